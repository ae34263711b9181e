package commands

import (
	"testing"

	"github.com/renewly-io/renewly-client/pkg/renewly"
	"github.com/stretchr/testify/assert"
)

func TestNewSubscriptionsCommand(t *testing.T) {
	cmd := NewSubscriptionsCommand()
	assert.Equal(t, "subscriptions", cmd.Use)
	assert.Equal(t, []string{"subscription", "subs"}, cmd.Aliases)
	assert.Equal(t, "Manage subscriptions", cmd.Short)

	var commandNames []string
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "cancel")
	assert.Contains(t, commandNames, "activate")
}

func TestSubscriptionsListCommandFlags(t *testing.T) {
	cmd := newSubscriptionsListCommand()
	assert.Equal(t, "list", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("all"))
	assert.NotNil(t, cmd.Flags().Lookup("limit"))
	assert.NotNil(t, cmd.Flags().Lookup("sort"))
	assert.NotNil(t, cmd.Flags().Lookup("status"))
	assert.NotNil(t, cmd.Flags().Lookup("customer"))
}

func TestNewChargesCommand(t *testing.T) {
	cmd := NewChargesCommand()
	assert.Equal(t, "charges", cmd.Use)

	var commandNames []string
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "skip")
	assert.Contains(t, commandNames, "refund")
}

func TestChargesSkipCommand(t *testing.T) {
	cmd := newChargesSkipCommand()
	assert.Equal(t, "skip CHARGE_ID", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)
	assert.NotNil(t, cmd.Flags().Lookup("subscription"))
}

func TestNewCustomersCommand(t *testing.T) {
	cmd := NewCustomersCommand()
	assert.Equal(t, "customers", cmd.Use)
	assert.Len(t, cmd.Commands(), 2)
}

func TestNewStoreCommand(t *testing.T) {
	cmd := NewStoreCommand()
	assert.Equal(t, "store", cmd.Use)
	assert.Equal(t, []string{"shop"}, cmd.Aliases)
	assert.Len(t, cmd.Commands(), 1)
}

func TestNewConfigCommand(t *testing.T) {
	cmd := NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)

	var commandNames []string
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "set")
	assert.Contains(t, commandNames, "unset")
}

func TestSetConfigKey(t *testing.T) {
	config := &Config{}

	assert.NoError(t, setConfigKey(config, "api", "https://api.sandbox.renewly.com"))
	assert.NoError(t, setConfigKey(config, "token", "tok"))
	assert.NoError(t, setConfigKey(config, "api_version", "2023-01"))
	assert.NoError(t, setConfigKey(config, "output", "json"))
	assert.Equal(t, "https://api.sandbox.renewly.com", config.API)
	assert.Equal(t, "2023-01", config.APIVersion)

	err := setConfigKey(config, "color", "auto")
	assert.ErrorIs(t, err, ErrUnknownConfigKey)
}

func TestBuildListParams(t *testing.T) {
	params := buildListParams(25, "created_at-desc", map[string]string{"status": "active"})

	values, err := params.Values(renewly.SubscriptionSortSet())
	assert.NoError(t, err)
	assert.Equal(t, "25", values.Get("limit"))
	assert.Equal(t, "created_at-desc", values.Get("sort_by"))
	assert.Equal(t, "active", values.Get("status"))
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3", "abc123", "2026-01-01")
	assert.Equal(t, "version", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}
