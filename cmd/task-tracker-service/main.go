// Package main запускает HTTP-сервис учёта задач
package main

func main() {
	Execute()
}
