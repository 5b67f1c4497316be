// Command sys68k loads an MC68000 ROM image and runs it, optionally
// attaching a GDB remote debugger over TCP before the first instruction
// executes.
package main

import (
	"fmt"
	"log"
	"net"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/urfave/cli.v2"

	"github.com/68k-sys/sys68k/debug"
	"github.com/68k-sys/sys68k/system"
)

var (
	errStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func main() {
	app := &cli.App{
		Name:  "sys68k",
		Usage: "run an MC68000 ROM image",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "attach a GDB remote debugger on address (e.g. localhost:5050) before running",
			},
		},
		ArgsUsage: "ROM",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("missing ROM path", 1)
	}

	rom, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading rom: %w", err)
	}

	m := system.New(rom)
	m.Reset()

	if addr := c.String("debug"); addr != "" {
		return runDebugSession(m, addr)
	}

	return runPlain(m)
}

// runPlain steps the machine until it halts or faults, with no debugger
// attached.
func runPlain(m *system.Machine) error {
	for !m.CPU.Stopped() {
		if _, err := m.Step(); err != nil {
			return fmt.Errorf("execution fault: %w", err)
		}
	}
	fmt.Println(okStyle.Render("machine halted"))
	return nil
}

// runDebugSession waits for a single GDB client on addr, then drives the
// target under the RSP run loop until the client disconnects or the
// machine halts with no debugger left to report to.
func runDebugSession(m *system.Machine, addr string) error {
	fmt.Fprintln(os.Stderr, infoStyle.Render(fmt.Sprintf("waiting for a GDB connection on %s...", addr)))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	defer ln.Close()

	nc, err := ln.Accept()
	if err != nil {
		return fmt.Errorf("accepting connection: %w", err)
	}
	defer nc.Close()
	fmt.Fprintln(os.Stderr, infoStyle.Render(fmt.Sprintf("debugger connected from %s", nc.RemoteAddr())))

	target := debug.NewTarget(m)
	conn := debug.NewConn(nc)

	session := debug.NewSession(target, conn)
	if err := session.Serve(); err != nil {
		log.Println(errStyle.Render(err.Error()))
	}

	// Run to completion on our own once the debugger disconnects, as a
	// plain run would.
	return runPlain(m)
}
