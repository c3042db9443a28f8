// Command demo builds the sample six-person network, checks the expected
// friendships, and prints the network.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"socialgraph/application/commands"
	"socialgraph/application/queries"
	"socialgraph/infrastructure/config"
	"socialgraph/infrastructure/di"
	pkgerrors "socialgraph/pkg/errors"

	"go.uber.org/zap"
)

var people = []string{"Alex", "Jordan", "Morgan", "Taylor", "Casey", "Riley"}

var friendships = [][2]string{
	{"Alex", "Jordan"},
	{"Alex", "Morgan"},
	{"Jordan", "Taylor"},
	{"Morgan", "Casey"},
	{"Taylor", "Riley"},
	{"Casey", "Riley"},
	{"Morgan", "Riley"},
	{"Alex", "Taylor"},
}

// expectedFriends is checked after the missing-person attempt
var expectedFriends = map[string][]string{
	"Alex":   {"Jordan", "Morgan", "Taylor"},
	"Jordan": {"Alex", "Taylor"},
	"Morgan": {"Alex", "Casey", "Riley"},
	"Taylor": {"Jordan", "Riley", "Alex"},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Close()

	if err := run(context.Background(), container, os.Stdout); err != nil {
		container.Logger.Error("Scenario failed", zap.Error(err))
		_ = container.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, container *di.Container, out io.Writer) error {
	for _, name := range people {
		if err := container.CommandBus.Send(ctx, commands.AddPersonCommand{Name: name}); err != nil {
			return fmt.Errorf("add %s: %w", name, err)
		}
	}

	// A repeated name is reported and leaves the network unchanged
	err := container.CommandBus.Send(ctx, commands.AddPersonCommand{Name: "Alex"})
	if !pkgerrors.IsDuplicatePerson(err) {
		return fmt.Errorf("expected duplicate person for Alex, got %v", err)
	}

	for _, pair := range friendships {
		cmd := commands.AddFriendshipCommand{PersonA: pair[0], PersonB: pair[1]}
		if err := container.CommandBus.Send(ctx, cmd); err != nil {
			return fmt.Errorf("connect %s and %s: %w", pair[0], pair[1], err)
		}
	}

	// Johnny was never added, so this must be rejected and change nothing
	err = container.CommandBus.Send(ctx, commands.AddFriendshipCommand{PersonA: "Jordan", PersonB: "Johnny"})
	if !pkgerrors.IsMissingPerson(err) {
		return fmt.Errorf("expected missing person for Jordan and Johnny, got %v", err)
	}

	for name, want := range expectedFriends {
		if err := expectFriends(ctx, container, name, want); err != nil {
			return err
		}
	}

	raw, err := container.QueryBus.Ask(ctx, queries.DumpNetworkQuery{})
	if err != nil {
		return fmt.Errorf("dump network: %w", err)
	}
	dump := raw.(*queries.DumpNetworkResult)
	for _, connection := range dump.People {
		if _, err := fmt.Fprintln(out, connection.String()); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(out, "All test cases passed!")
	return err
}

func expectFriends(ctx context.Context, container *di.Container, name string, want []string) error {
	raw, err := container.QueryBus.Ask(ctx, queries.GetPersonQuery{Name: name})
	if err != nil {
		return fmt.Errorf("look up %s: %w", name, err)
	}
	got := raw.(*queries.GetPersonResult).Friends

	if len(got) != len(want) {
		return fmt.Errorf("%s has %d friends %v, want %d %v", name, len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("%s has friends %v, want %v", name, got, want)
		}
	}
	return nil
}
