// Package main is the entry point for the Zabbix template generator.
package main

import (
	"os"

	"zabbix-template/cmd/zabbix-template/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
