package keyring

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/bnema/session-vault-cli/internal/ports"
	gokeyring "github.com/zalando/go-keyring"
)

const DefaultService = "session-vault"

type (
	setFunc    func(service, user, password string) error
	getFunc    func(service, user string) (string, error)
	deleteFunc func(service, user string) error
)

// Store keeps secrets in the OS keyring (Secret Service, Keychain or
// Credential Manager). Keys map to keyring users under one service name.
type Store struct {
	service string
	set     setFunc
	get     getFunc
	delete  deleteFunc
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(service string) *Store {
	if service == "" {
		service = DefaultService
	}

	return &Store{
		service: service,
		set:     gokeyring.Set,
		get:     gokeyring.Get,
		delete:  gokeyring.Delete,
	}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.set(s.service, key, value); err != nil {
		return formatError("put", key, err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	value, err := s.get(s.service, key)
	if err != nil {
		return "", formatError("get", key, err)
	}

	return value, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.delete(s.service, key)
	if err != nil && !errors.Is(err, gokeyring.ErrNotFound) {
		return formatError("delete", key, err)
	}

	return nil
}

func formatError(op string, key string, err error) error {
	if errors.Is(err, gokeyring.ErrNotFound) {
		return fmt.Errorf("keyring %s %q: %w: %w", op, key, domain.ErrSecretNotFound, err)
	}

	return fmt.Errorf("keyring %s %q: %w", op, key, err)
}
