package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fadedpez/aetheria/pkg/entities"
)

// prompter asks yes/no questions on a terminal
type prompter struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

func newPrompter(in io.Reader, out io.Writer, assumeYes bool) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out, assumeYes: assumeYes}
}

// Ask prints question and reads a y/n answer; anything but yes declines
func (p *prompter) Ask(question string) (bool, error) {
	if p.assumeYes {
		return true, nil
	}

	fmt.Fprintf(p.out, "%s [y/N] ", question)
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// Confirm approves a credit grant
func (p *prompter) Confirm(_ context.Context, product entities.Product) (bool, error) {
	if product.ID == entities.AdRewardProductID {
		return p.Ask(fmt.Sprintf("Watch a short video for %d free credits?", product.Total()))
	}
	return p.Ask(fmt.Sprintf("Buy %d credits for %s?", product.Total(), product.DisplayPrice()))
}
