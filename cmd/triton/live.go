package main

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type LiveCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *LiveCmd) Run(globals *Globals) error {
	client, err := globals.Client()
	if err != nil {
		return err
	}
	if _, err := client.IsServerLive(globals.ctx); err != nil {
		return err
	}
	fmt.Println("server is live")
	return nil
}
