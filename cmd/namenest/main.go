// Package main provides the namenest CLI application.
// namenest browses bilingual Indian baby names and serves the NameNest API.
package main

import "github.com/namenest/namenest/cmd"

func main() {
	cmd.Execute()
}
