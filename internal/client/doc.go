// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements taskctl, the command line client of the
// go-task-keeper API.
//
// Every subcommand maps to one API call made through [adapter.TaskAPI] and
// prints the decoded response as indented JSON on stdout. Logs go to stderr.
package client
