package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"nimbusExplorer/explorer"
)

func TestOperationErrorMessageTaxonomy(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: %v", explorer.ErrAccess, errors.New("open /x")), "Access denied"},
		{fmt.Errorf("%w: %v", explorer.ErrNotFound, errors.New("stat /x")), "no longer exists"},
		{fmt.Errorf("%w: /x", explorer.ErrAlreadyExists), "already exists"},
		{fmt.Errorf("%w: /x", explorer.ErrNotEmpty), "not empty"},
		{errors.New("disk on fire"), "disk on fire"},
	}

	for _, tc := range cases {
		assert.Contains(t, operationErrorMessage(tc.err), tc.want)
	}
}

// A nil error must still produce a message instead of dereferencing nil:
// dialog callbacks can reach the error path without a concrete failure.
func TestOperationErrorMessageNil(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.NotEmpty(t, operationErrorMessage(nil))
	})
}
