package main

import "github.com/ZacxDev/shellgen/cmd"

func main() {
	cmd.Execute()
}
