// Package main is the entry point for the devcard CLI.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/srcheesedev/devcard/internal/render"
	"github.com/srcheesedev/devcard/internal/tui"
	"github.com/srcheesedev/devcard/profile"
)

var (
	version = "dev"
)

func main() {
	// CLI flags.
	outputFormat := flag.String("o", "text", "Output format: text, json, markdown")
	cardFlag := flag.Bool("card", false, "Render the profile as a styled terminal card")
	interactive := flag.Bool("i", false, "Interactive mode: browse the profile in a TUI")
	filterFlag := flag.String("filter", "", "Glob pattern restricting which skills are shown (e.g. 'cloud/*')")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("devcard %s\n", version)
		os.Exit(0)
	}

	p := profile.Aggregate()
	if *filterFlag != "" {
		p.Skills = render.FilterSkills(p.Skills, profile.SkillCategories(), *filterFlag)
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	// Interactive mode: launch the TUI.
	if *interactive {
		if !isTTY {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle Ctrl+C.
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt)
		go func() {
			<-sigCh
			cancel()
		}()

		app := tui.New(tui.AppConfig{Profile: p, Version: version})
		if err := app.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *cardFlag {
		fmt.Println(render.Card(p, width))
		return
	}

	switch *outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "markdown":
		md := render.Markdown(p)
		if isTTY {
			fmt.Println(render.NewANSIRenderer(width).Render(md))
		} else {
			fmt.Print(md)
		}

	case "text":
		// Optional positional section: about, skills, interests, contact.
		if section := flag.Arg(0); section != "" {
			if err := render.Section(os.Stdout, p, section); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
		render.Summary(os.Stdout, p)

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q (want text, json, or markdown)\n", *outputFormat)
		os.Exit(1)
	}
}
