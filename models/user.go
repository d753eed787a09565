// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package models

// User is the profile of an authenticated principal.
type User struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`

	PrimaryEmailAddressID string         `json:"primary_email_address_id,omitempty"`
	EmailAddresses        []EmailAddress `json:"email_addresses,omitempty"`

	// OrganizationMemberships lists the organizations the user belongs to,
	// each carrying the user's role inside the organization.
	OrganizationMemberships []OrganizationMembership `json:"organization_memberships,omitempty"`

	TwoFactorEnabled bool `json:"two_factor_enabled"`

	LastSignInAt int64 `json:"last_sign_in_at,omitempty"`
	CreatedAt    int64 `json:"created_at"`
	UpdatedAt    int64 `json:"updated_at"`
}

// EmailAddress is a verified or pending email identification of a user.
type EmailAddress struct {
	ID           string `json:"id"`
	Object       string `json:"object"`
	EmailAddress string `json:"email_address"`
}

// MembershipByOrganizationID returns the user's membership in the organization
// with the given identifier, or nil if the user is not a member.
func (u *User) MembershipByOrganizationID(orgID string) *OrganizationMembership {
	if u == nil || orgID == "" {
		return nil
	}
	for i := range u.OrganizationMemberships {
		org := u.OrganizationMemberships[i].Organization
		if org != nil && org.ID == orgID {
			return &u.OrganizationMemberships[i]
		}
	}
	return nil
}

// MembershipBySlug returns the user's membership in the organization with the
// given slug, or nil if the user is not a member.
func (u *User) MembershipBySlug(slug string) *OrganizationMembership {
	if u == nil || slug == "" {
		return nil
	}
	for i := range u.OrganizationMemberships {
		org := u.OrganizationMemberships[i].Organization
		if org != nil && org.Slug == slug {
			return &u.OrganizationMemberships[i]
		}
	}
	return nil
}
