package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/giocrisrai/inventory"
	"github.com/giocrisrai/inventory/renderer"
	"github.com/google/subcommands"
)

type menuCmd struct {
	plain bool
}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "start an interactive inventory session" }
func (*menuCmd) Usage() string {
	return `inv menu [-plain]

  Starts an interactive session over a new, empty inventory. Products are
  kept in memory only and are gone when the session ends.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "Print reports as raw markdown instead of rendering them for the terminal.")
}

func (c *menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Ctrl-C ends the session with a goodbye instead of killing the
	// process mid-prompt.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	s := newSession(os.Stdin, os.Stdout, inventory.NewInventory())
	if !c.plain {
		s.render = renderMarkdown
	}
	s.runUntil(ctx)
	return subcommands.ExitSuccess
}

const menuText = `
============================================================
                     INVENTORY SYSTEM
============================================================
1. Add product
2. Find product
3. List products
4. Total inventory value
5. Update product price
6. Update product quantity
0. Quit
============================================================
`

// errInputClosed signals that the input stream ended mid-action. The run
// loop notices on its next read and ends the session.
var errInputClosed = errors.New("input closed")

// session drives the interactive menu over one inventory instance. The
// inventory is owned by the session; nothing is shared between sessions.
type session struct {
	in     *bufio.Scanner
	out    io.Writer
	inv    *inventory.Inventory
	render func(string) string // post-processing for markdown reports
}

func newSession(in io.Reader, out io.Writer, inv *inventory.Inventory) *session {
	return &session{
		in:     bufio.NewScanner(in),
		out:    out,
		inv:    inv,
		render: func(md string) string { return md },
	}
}

// run loops over the menu until the user quits or the input ends.
func (s *session) run() {
	for {
		fmt.Fprint(s.out, menuText)
		choice, ok := s.readLine("Select an option: ")
		if !ok || choice == "0" {
			fmt.Fprintln(s.out, "Leaving the inventory system. Goodbye!")
			return
		}
		s.dispatch(choice)
	}
}

// runUntil runs the session until the user quits, the input ends or ctx
// is cancelled, and reports whether it was interrupted.
func (s *session) runUntil(ctx context.Context) (interrupted bool) {
	done := make(chan struct{})
	go func() {
		s.run()
		close(done)
	}()

	select {
	case <-done:
		return false
	case <-ctx.Done():
		fmt.Fprintln(s.out, "\nInterrupted. Leaving the inventory system. Goodbye!")
		return true
	}
}

// dispatch runs one menu action, reporting any failure without ending the
// session.
func (s *session) dispatch(choice string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(s.out, "Unexpected error: %v\n", r)
		}
	}()

	var err error
	switch choice {
	case "1":
		err = s.addProduct()
	case "2":
		err = s.findProduct()
	case "3":
		fmt.Fprint(s.out, s.render(renderer.InventoryMarkdown(s.inv)))
	case "4":
		fmt.Fprintf(s.out, "Total inventory value: %s\n", s.inv.TotalValue())
	case "5":
		err = s.updatePrice()
	case "6":
		err = s.updateQuantity()
	default:
		fmt.Fprintln(s.out, "Unknown option. Try again.")
	}
	if err != nil {
		s.report(err)
	}
}

// report prints err, distinguishing the core's validation and lookup
// errors from plain input-conversion failures.
func (s *session) report(err error) {
	var invalid *inventory.InvalidArgumentError
	var notFound *inventory.NotFoundError
	switch {
	case errors.Is(err, errInputClosed):
		// the run loop ends the session on its next read
	case errors.As(err, &invalid):
		fmt.Fprintf(s.out, "Error: %v\n", invalid)
	case errors.As(err, &notFound):
		fmt.Fprintf(s.out, "Error: %v\n", notFound)
	default:
		fmt.Fprintf(s.out, "Invalid input: %v\n", err)
	}
}

func (s *session) addProduct() error {
	fmt.Fprintln(s.out, "\n[Add product]")
	name, ok := s.readLine("Name: ")
	if !ok {
		return errInputClosed
	}
	price, err := s.readPrice("Price: $")
	if err != nil {
		return err
	}
	quantity, err := s.readQuantity("Quantity: ")
	if err != nil {
		return err
	}

	product, err := inventory.NewProduct(name, price, quantity)
	if err != nil {
		return err
	}
	if err := s.inv.AddProduct(product); err != nil {
		return err
	}

	// show the stored entry, which differs from the input after a merge
	stored, err := s.inv.FindProduct(name)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Saved: %v\n", stored)
	return nil
}

func (s *session) findProduct() error {
	fmt.Fprintln(s.out, "\n[Find product]")
	name, ok := s.readLine("Name to find: ")
	if !ok {
		return errInputClosed
	}
	product, err := s.inv.FindProduct(name)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Found: %v\n", product)
	return nil
}

func (s *session) updatePrice() error {
	fmt.Fprintln(s.out, "\n[Update price]")
	name, ok := s.readLine("Product name: ")
	if !ok {
		return errInputClosed
	}
	product, err := s.inv.FindProduct(name)
	if err != nil {
		return err
	}
	price, err := s.readPrice("New price: $")
	if err != nil {
		return err
	}
	if err := product.UpdatePrice(price); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Price updated: %v\n", product)
	return nil
}

func (s *session) updateQuantity() error {
	fmt.Fprintln(s.out, "\n[Update quantity]")
	name, ok := s.readLine("Product name: ")
	if !ok {
		return errInputClosed
	}
	product, err := s.inv.FindProduct(name)
	if err != nil {
		return err
	}
	quantity, err := s.readQuantity("New quantity: ")
	if err != nil {
		return err
	}
	if err := product.UpdateQuantity(quantity); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Quantity updated: %v\n", product)
	return nil
}

// readLine prompts for and reads one line. ok is false when the input is
// exhausted.
func (s *session) readLine(prompt string) (line string, ok bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// readPrice reads a line and converts it to a price candidate. The
// conversion failure is distinct from the core's own price validation.
func (s *session) readPrice(prompt string) (float64, error) {
	line, ok := s.readLine(prompt)
	if !ok {
		return 0, errInputClosed
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a price", line)
	}
	return v, nil
}

// readQuantity reads a line and converts it to a quantity candidate.
func (s *session) readQuantity(prompt string) (int, error) {
	line, ok := s.readLine(prompt)
	if !ok {
		return 0, errInputClosed
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", line)
	}
	return v, nil
}
