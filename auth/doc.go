// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the admin login and token checks.

# Login

A single admin user is configured with ADMIN_USER and ADMIN_PASSWORD.
Credentials are compared in constant time:

	err := auth.CheckCredentials(username, password, cfg.AdminUser, cfg.AdminPassword)

# Admin Tokens

A successful login returns an HS256 JWT signed with ADMIN_TOKEN_SECRET:

	token, expiresAt, err := auth.IssueAdminToken(secret, 12*time.Hour, time.Now())
	err = auth.ValidateAdminToken(token, secret)

Tokens carry issuer "quickly-draw", subject "admin" and a required expiry.
Nothing is stored server-side; rotating the secret revokes every token.

# Bearer Header

	token := auth.BearerToken(r.Header.Get("Authorization"))
*/
package auth
