package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Session is the interactive chat loop with the coach.
type Session struct {
	w     io.Writer
	r     *bufio.Reader
	Coach *Coach
}

// NewSession creates a new interactive session.
//
// It takes an io.Writer for the coach's output (e.g., os.Stdout), and an
// io.Reader for user input (e.g., os.Stdin).
func NewSession(w io.Writer, r io.Reader) *Session {
	return &Session{w: w, r: bufio.NewReader(r), Coach: NewCoach()}
}

const prompt = "coach> "

// Run starts the interactive REPL session. Initial prompts, if any, are
// consumed before reading from the user.
func (s *Session) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := s.Coach.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(s.w, "Welcome to your finance coach. Type 'bye' to exit.")

	// REPL loop
	for {
		fmt.Fprint(s.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(s.w, input)
		} else {
			var err error
			input, err = s.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		reply, err := s.Coach.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.w, reply)
	}
}
