// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the appservice-config command tree.
//
// Commands that read live state (extract, default, fill) build an Azure
// Resource Manager adapter on first use; merge and validate work on local
// documents only and never acquire credentials. Documents are written to the
// file named by -o, in the format of its extension, or to stdout in the
// configured output format.
package cli
