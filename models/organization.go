// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package models

// Organization is an organization the user is a member of. The active
// organization of a session is always derived from the session's membership
// list, never persisted on its own.
type Organization struct {
	ID           string `json:"id"`
	Object       string `json:"object"`
	Name         string `json:"name"`
	Slug         string `json:"slug,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	MembersCount int    `json:"members_count,omitempty"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

// OrganizationMembership ties a user to an organization with a role.
type OrganizationMembership struct {
	ID           string        `json:"id"`
	Object       string        `json:"object"`
	Role         string        `json:"role"`
	Permissions  []string      `json:"permissions,omitempty"`
	Organization *Organization `json:"organization"`
	CreatedAt    int64         `json:"created_at"`
	UpdatedAt    int64         `json:"updated_at"`
}
