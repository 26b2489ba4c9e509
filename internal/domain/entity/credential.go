// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LockoutPolicy controls how repeated authentication failures lock a credential.
type LockoutPolicy struct {
	MaxFailedAttempts int
	LockDuration      time.Duration
}

// Credential is the admin account used to sign in to the dashboard.
type Credential struct {
	ID             uuid.UUID
	Username       string
	Email          string
	PasswordHash   string
	FailedAttempts int
	LockedUntil    *time.Time
	LastLogin      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsLocked reports whether authentication is refused at now.
func (c *Credential) IsLocked(now time.Time) bool {
	return c.LockedUntil != nil && c.LockedUntil.After(now)
}

// RecordFailure counts a failed password check and locks the credential
// once the policy threshold is reached.
func (c *Credential) RecordFailure(now time.Time, policy LockoutPolicy) {
	c.FailedAttempts++
	if c.FailedAttempts >= policy.MaxFailedAttempts {
		lockedUntil := now.Add(policy.LockDuration)
		c.LockedUntil = &lockedUntil
	}
	c.UpdatedAt = now
}

// RecordSuccess clears the failure counter and stamps the login time.
func (c *Credential) RecordSuccess(now time.Time) {
	c.FailedAttempts = 0
	c.LockedUntil = nil
	c.LastLogin = &now
	c.UpdatedAt = now
}
