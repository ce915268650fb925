// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the syncctl command runtime.
//
// syncctl signs a development token for a user and drives push and pull
// calls against a running sync server, printing the JSON responses.
package client
