/* Copyright 2025 Gymplan Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gymplan/gymplan/pkg/cli/log"
	"github.com/gymplan/gymplan/pkg/prompt"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh/terminal"
)

// stdin is shared by every prompt so that piped input buffered by one
// prompt is not lost to the next
var stdin = bufio.NewReader(os.Stdin)

func readInput(r io.Reader) (string, error) {
	input, err := prompt.ReadLine(r)
	if err != nil {
		return "", errors.Wrap(err, "reading stdin")
	}

	return input, nil
}

// PromptInput prompts the user input and saves the result to the destination
func PromptInput(message string, dest *string) error {
	log.Askf(message, false)

	input, err := readInput(stdin)
	if err != nil {
		return errors.Wrap(err, "getting user input")
	}

	*dest = strings.TrimSpace(input)

	return nil
}

// PromptInputDefault prompts the user input showing the current value, which
// is kept when the input is empty
func PromptInputDefault(message, current string, dest *string) error {
	if current != "" {
		message = fmt.Sprintf("%s [%s]", message, current)
	}

	var input string
	if err := PromptInput(message, &input); err != nil {
		return err
	}

	if input == "" {
		input = current
	}
	*dest = input

	return nil
}

// PromptPassword prompts the user input a password and saves the result to the destination.
// The input is masked, meaning it is not echoed on the terminal. Piped input
// is read as a plain line.
func PromptPassword(message string, dest *string) error {
	log.Askf(message, true)

	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		input, err := readInput(stdin)
		if err != nil {
			return errors.Wrap(err, "getting user input")
		}

		fmt.Println("")
		*dest = input
		return nil
	}

	password, err := terminal.ReadPassword(fd)
	if err != nil {
		return errors.Wrap(err, "getting user input")
	}

	fmt.Println("")

	*dest = string(password)

	return nil
}

// Confirm prompts for user input to confirm a choice
func Confirm(question string, optimistic bool) (bool, error) {
	message := prompt.FormatQuestion(question, optimistic)

	log.Askf(message, false)

	confirmed, err := prompt.ReadYesNo(stdin, optimistic)
	if err != nil {
		return false, errors.Wrap(err, "Failed to get user input")
	}

	return confirmed, nil
}
