package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"hotel-reservation/internal/app"
	"hotel-reservation/internal/config"
	"hotel-reservation/internal/logger"
)

// console is the interactive front end. All domain decisions live in the
// reservation service; this loop only prompts, parses and prints.
type console struct {
	app    *app.App
	in     *bufio.Scanner
	out    io.Writer
	logger *logger.Logger
}

func main() {
	// Log lines go to stderr so they don't interleave with the menu.
	l := logger.NewWithWriter(os.Stderr)

	var exitCode int
	if err := run(l); err != nil {
		l.Error("Application error", logger.Error(err))
		exitCode = 1
	}
	os.Exit(exitCode)
}

func run(l *logger.Logger) error {
	cfg, err := config.LoadWithFile(".env")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	a := app.New(cfg, l)
	if err := a.Initialize(); err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			l.Error("Failed to close store", logger.Error(cerr))
		}
	}()

	c := &console{
		app:    a,
		in:     bufio.NewScanner(os.Stdin),
		out:    os.Stdout,
		logger: l,
	}
	return c.run()
}

func (c *console) run() error {
	fmt.Fprintln(c.out, "===== Hotel Reservation System =====")

	if !c.authenticate() {
		return nil
	}

	for {
		fmt.Fprintln(c.out, "\n1. Show Available Rooms\n2. Book Room\n3. Calculate Bill\n4. View My Bookings\n5. Cancel Booking\n6. Exit")
		choice, ok := c.readInt("Choose option: ")
		if !ok {
			return nil
		}

		switch choice {
		case 1:
			c.showAvailableRooms()
		case 2:
			c.bookRoom()
		case 3:
			c.calculateBill()
		case 4:
			c.showMyBookings()
		case 5:
			c.cancelBooking()
		case 6:
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

// authenticate runs the signup/login preamble. Returns false when the
// operator could not log in or input ended.
func (c *console) authenticate() bool {
	svc := c.app.Reservations()

	fmt.Fprintln(c.out, "1. Signup\n2. Login")
	choice, ok := c.readInt("Choose option: ")
	if !ok {
		return false
	}

	username, ok := c.readLine("Username: ")
	if !ok {
		return false
	}
	password, ok := c.readLine("Password: ")
	if !ok {
		return false
	}

	if choice == 1 {
		if err := svc.Signup(username, password); err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			return false
		}
		fmt.Fprintln(c.out, "Signup successful!")
		fmt.Fprintln(c.out, "Now please log in with the same credentials.")
		if username, ok = c.readLine("Username: "); !ok {
			return false
		}
		if password, ok = c.readLine("Password: "); !ok {
			return false
		}
	}

	if !svc.Login(username, password) {
		fmt.Fprintln(c.out, "Login failed!")
		return false
	}
	fmt.Fprintln(c.out, "Login successful!")
	return true
}

func (c *console) showAvailableRooms() {
	rooms, err := c.app.Reservations().ListAvailableRooms()
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	if len(rooms) == 0 {
		fmt.Fprintln(c.out, "No rooms available.")
		return
	}
	for _, room := range rooms {
		fmt.Fprintln(c.out, room)
	}
}

func (c *console) bookRoom() {
	roomNumber, ok := c.readInt("Enter Room Number to Book: ")
	if !ok {
		return
	}
	if err := c.app.Reservations().Book(roomNumber); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Room %d booked successfully.\n", roomNumber)
}

func (c *console) calculateBill() {
	roomNumber, ok := c.readInt("Enter Room Number: ")
	if !ok {
		return
	}
	nights, ok := c.readInt("Enter Number of Days: ")
	if !ok {
		return
	}
	amount, err := c.app.Reservations().CalculateBill(roomNumber, nights)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Total Bill: $%s\n", amount)
}

func (c *console) showMyBookings() {
	numbers, err := c.app.Reservations().MyBookings()
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	if len(numbers) == 0 {
		fmt.Fprintln(c.out, "No rooms currently booked.")
		return
	}
	parts := make([]string, 0, len(numbers))
	for _, n := range numbers {
		parts = append(parts, strconv.Itoa(n))
	}
	fmt.Fprintf(c.out, "Booked rooms: %s\n", strings.Join(parts, " "))
}

func (c *console) cancelBooking() {
	roomNumber, ok := c.readInt("Enter Room Number to Cancel: ")
	if !ok {
		return
	}
	if err := c.app.Reservations().Cancel(roomNumber); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Booking for Room %d cancelled.\n", roomNumber)
}

// readLine prompts and reads one line. ok is false when input ended.
func (c *console) readLine(prompt string) (line string, ok bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// readInt prompts until the operator enters a number or input ends.
func (c *console) readInt(prompt string) (value int, ok bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input. Please enter a number.")
			continue
		}
		return value, true
	}
}
