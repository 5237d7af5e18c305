package main

func main() {
	Init()
	Run()
}
