// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authfront/authfront-go/internal/logger"
	"github.com/authfront/authfront-go/models"
)

func TestRegistry_NotifyInRegistrationOrder(t *testing.T) {
	r := NewRegistry(logger.Nop())

	var order []int
	for i := 0; i < 5; i++ {
		n := i
		r.Add(func(*models.Client, *models.Session, *models.User, *models.Organization) {
			order = append(order, n)
		})
	}

	r.Notify(&models.Client{ID: "client_1"}, nil, nil, nil)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestRegistry_PanickingListenerIsIsolated(t *testing.T) {
	r := NewRegistry(logger.Nop())

	var after bool
	r.Add(func(*models.Client, *models.Session, *models.User, *models.Organization) {
		panic("listener bug")
	})
	r.Add(func(*models.Client, *models.Session, *models.User, *models.Organization) {
		after = true
	})

	require.NotPanics(t, func() {
		r.Notify(&models.Client{ID: "client_1"}, nil, nil, nil)
	})
	assert.True(t, after, "listeners after the panicking one still run")
}

func TestRegistry_RemoveUnknownHandleIsNoop(t *testing.T) {
	r := NewRegistry(logger.Nop())
	r.Remove(Handle("nonexistent"))

	var calls int
	r.Add(func(*models.Client, *models.Session, *models.User, *models.Organization) { calls++ })
	r.Notify(nil, nil, nil, nil)
	assert.Equal(t, 1, calls)
}

func TestRegistry_AddDuringFanOutSeesNextNotification(t *testing.T) {
	r := NewRegistry(logger.Nop())

	var lateCalls int
	r.Add(func(*models.Client, *models.Session, *models.User, *models.Organization) {
		if lateCalls == 0 {
			r.Add(func(*models.Client, *models.Session, *models.User, *models.Organization) {
				lateCalls++
			})
		}
	})

	r.Notify(nil, nil, nil, nil)
	assert.Zero(t, lateCalls, "listener added mid-fan-out skips the current notification")

	r.Notify(nil, nil, nil, nil)
	assert.Equal(t, 1, lateCalls)
}

func TestRegistry_RemoveDuringFanOutIsNotInvokedTwice(t *testing.T) {
	r := NewRegistry(logger.Nop())

	var peerCalls int
	var peer Handle
	r.Add(func(*models.Client, *models.Session, *models.User, *models.Organization) {
		r.Remove(peer)
	})
	peer = r.Add(func(*models.Client, *models.Session, *models.User, *models.Organization) {
		peerCalls++
	})

	r.Notify(nil, nil, nil, nil)
	assert.Equal(t, 1, peerCalls, "a listener removed mid-fan-out runs at most once for it")

	r.Notify(nil, nil, nil, nil)
	assert.Equal(t, 1, peerCalls, "a removed listener receives no later notifications")
}

func TestRegistry_SelfRemoveDuringFanOut(t *testing.T) {
	r := NewRegistry(logger.Nop())

	var calls int
	var h Handle
	h = r.Add(func(*models.Client, *models.Session, *models.User, *models.Organization) {
		calls++
		r.Remove(h)
	})

	r.Notify(nil, nil, nil, nil)
	r.Notify(nil, nil, nil, nil)
	assert.Equal(t, 1, calls, "a self-removing listener runs exactly once")
}
