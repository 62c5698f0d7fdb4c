//go:build !unix

package ui

import "github.com/gdamore/tcell/v2"

func (c *pagerCommand) newScreen() (tcell.Screen, error) {
	return tcell.NewScreen()
}
