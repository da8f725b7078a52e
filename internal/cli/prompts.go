package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"guessing-toolbox/internal/ai"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Yes, No, Maybe, Info, Warn, Header, Prompt, Debug *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Maybe:  color.New(color.FgYellow),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Debug:  color.New(color.FgMagenta),
}

// StrategyColors maps strategy names to display colors.
var StrategyColors = map[string]*color.Color{
	"random":     color.New(color.FgBlue),
	"sequential": color.New(color.FgYellow),
	"signed":     color.New(color.FgWhite),
	"binary":     color.New(color.FgMagenta),
}

// ColorizeStrategy returns a strategy name as a colored string.
func ColorizeStrategy(name string) string {
	if c, ok := StrategyColors[name]; ok {
		return c.Sprint(name)
	}
	return name
}

// ColorizeSymbol colors a hint symbol: green for the hit, yellow otherwise.
func ColorizeSymbol(symbol string) string {
	if symbol == "!" {
		return C.Yes.Sprint(symbol)
	}
	return C.Maybe.Sprint(symbol)
}

// --- Prompting and Usage ---

func (c *CLI) printUsage() {
	C.Header.Println("\n--- Guessing Toolbox ---")
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/guess play [min max]")
	fmt.Println("    To guess a hidden number yourself.")
	fmt.Println("  go run ./cmd/guess watch <strategy> [min max]")
	fmt.Printf("    To watch one AI play a verbose game. Strategies: %s.\n", strings.Join(strategyNames(), ", "))
	fmt.Println("  go run ./cmd/guess bench")
	fmt.Println("    To benchmark the strategies over many random games.")
	fmt.Println("\nFlags:")
	fmt.Println("  -config FILE       Benchmark configuration (default default_config.json).")
	fmt.Println("  -trials N          Override the configured trial count.")
	fmt.Println("  -seed N            Fix the random seed for a reproducible run.")
	fmt.Println("  -loglevel debug    Enable detailed tracing.")
}

func strategyNames() []string {
	var names []string
	for _, s := range ai.AllStrategies() {
		names = append(names, s.Name)
	}
	return names
}

func (c *CLI) promptForString(prompt string) string {
	for {
		C.Prompt.Print(prompt)
		input, err := c.line.Prompt("")
		if err != nil {
			C.Info.Println("\nGoodbye!")
			os.Exit(0)
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			c.line.AppendHistory(trimmed)
			return trimmed
		}
	}
}

func (c *CLI) promptForInt(prompt string, min, max int) int {
	for {
		input := c.promptForString(prompt)
		num, err := strconv.Atoi(input)
		if err != nil || num < min || num > max {
			C.Warn.Printf("Invalid input. Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return num
	}
}
