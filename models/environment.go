// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package models

// Environment describes the instance-wide settings of the authentication
// service: which identification strategies are enabled, display metadata, and
// organization feature switches. It changes rarely, so the SDK caches it and
// revalidates in the background alongside the client snapshot.
type Environment struct {
	AuthConfig           AuthConfig           `json:"auth_config"`
	DisplayConfig        DisplayConfig        `json:"display_config"`
	OrganizationSettings OrganizationSettings `json:"organization_settings"`
	MaintenanceMode      bool                 `json:"maintenance_mode"`
}

// AuthConfig carries the instance's authentication strategy switches.
type AuthConfig struct {
	ID                         string     `json:"id"`
	Object                     string     `json:"object"`
	IdentificationStrategies   []string   `json:"identification_strategies,omitempty"`
	IdentificationRequirements [][]string `json:"identification_requirements,omitempty"`
	FirstFactors               []string   `json:"first_factors,omitempty"`
	SecondFactors              []string   `json:"second_factors,omitempty"`
	SingleSessionMode          bool       `json:"single_session_mode"`
	TestMode                   bool       `json:"test_mode"`
}

// DisplayConfig carries instance display metadata.
type DisplayConfig struct {
	ID                      string `json:"id"`
	Object                  string `json:"object"`
	ApplicationName         string `json:"application_name"`
	InstanceEnvironmentType string `json:"instance_environment_type"`
	HomeURL                 string `json:"home_url,omitempty"`
	SupportEmail            string `json:"support_email,omitempty"`
}

// OrganizationSettings carries the organization feature switches.
type OrganizationSettings struct {
	Enabled               bool   `json:"enabled"`
	MaxAllowedMemberships int    `json:"max_allowed_memberships,omitempty"`
	CreatorRole           string `json:"creator_role,omitempty"`
}
