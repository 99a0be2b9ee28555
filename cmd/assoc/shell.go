package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tailored-agentic-units/structures/assoc"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage")
	errQuit           = errors.New("quit")
)

const helpText = `commands:
  set <key> <value>   associate value with key
  get <key>           print the value for key
  has <key>           print whether key is present
  remove <key>        delete key
  size                print the number of entries
  print               print all entries
  clone               print a copy of all entries
  help                print this text
  quit                exit`

// shell executes line commands against a string container.
type shell struct {
	array *assoc.AssociativeArray[string, string]
	out   io.Writer
}

func newShell(array *assoc.AssociativeArray[string, string], out io.Writer) *shell {
	return &shell{array: array, out: out}
}

// run executes each line read from in until EOF, quit, or ctx is done.
// Command errors are printed and do not stop the loop.
func (s *shell) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func (s *shell) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "set":
		if len(args) < 2 {
			return fmt.Errorf("%w: set <key> <value>", errUsage)
		}
		if err := s.array.Set(args[0], strings.Join(args[1:], " ")); err != nil {
			return err
		}
		s.println("ok")
	case "get":
		if len(args) != 1 {
			return fmt.Errorf("%w: get <key>", errUsage)
		}
		v, err := s.array.Get(args[0])
		if err != nil {
			return err
		}
		s.println(v)
	case "has":
		if len(args) != 1 {
			return fmt.Errorf("%w: has <key>", errUsage)
		}
		s.println(strconv.FormatBool(s.array.HasKey(args[0])))
	case "remove":
		if len(args) != 1 {
			return fmt.Errorf("%w: remove <key>", errUsage)
		}
		s.array.Remove(args[0])
		s.println("ok")
	case "size":
		s.println(strconv.Itoa(s.array.Size()))
	case "print":
		s.println(s.array.String())
	case "clone":
		s.println(s.array.Clone().String())
	case "help":
		s.println(helpText)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
	return nil
}

func (s *shell) println(text string) {
	fmt.Fprintln(s.out, text)
}
