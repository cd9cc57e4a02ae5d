/*
Copyright © 2021 Edmond Cotterell

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
)

// prompter writes a question to out and reads the answer, one line at a time, from in.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

// ask returns the trimmed answer, or io.EOF once the input is exhausted.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSpace(p.scanner.Text()), nil
}

// askPosition reads a 1-based contact number and returns the matching 0-based index.
// ok is false when the answer is not a number.
func (p *prompter) askPosition(question string) (index int, ok bool, err error) {
	answer, err := p.ask(question)
	if err != nil {
		return 0, false, err
	}

	position, convErr := strconv.Atoi(answer)
	if convErr != nil {
		return 0, false, nil
	}

	return position - 1, true, nil
}

// askDate reads a yyyy-mm-dd date. ok is false when the answer does not parse.
func (p *prompter) askDate(question string) (date civil.Date, ok bool, err error) {
	answer, err := p.ask(question)
	if err != nil {
		return civil.Date{}, false, err
	}

	date, parseErr := civil.ParseDate(answer)
	if parseErr != nil {
		return civil.Date{}, false, nil
	}

	return date, true, nil
}
