package core

import (
	"bufio"
	"fmt"
	"strings"
)

type GetInputWrapper struct {
	Scanner bufio.Reader
}

func (t *GetInputWrapper) GetInputString(question string, def string) (text string, err error) {
	if def != "" {
		fmt.Print(question + "\n" + "press enter for default [" + def + "]\n")

		text, err = t.Scanner.ReadString('\n')
		if err != nil {
			return "", err
		}
		text = strings.Replace(text, "\r\n", "", -1)
		text = strings.Replace(text, "\n", "", -1)

		if text == "" {
			text = def
		}
	} else {
		fmt.Print(question + "\n")

		text, err = t.Scanner.ReadString('\n')
		if err != nil {
			return "", err
		}
		text = strings.Replace(text, "\n", "", -1)
	}

	return text, nil
}

// Confirm asks a yes/no question and reports whether the answer was yes.
// An empty answer means no.
func (t *GetInputWrapper) Confirm(question string) (bool, error) {
	answer, err := t.GetInputString(question, "n")
	if err != nil {
		return false, fmt.Errorf("confirm %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}

	return false, nil
}
