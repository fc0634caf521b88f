package main

func main() {
	runSimulation()
}
