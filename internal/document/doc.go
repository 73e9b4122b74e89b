// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package document reads and writes web app configurations as YAML or JSON
// files.
//
// Documents are flat: the runtime union is stored as a single object and its
// kind is decided on load. An "os" of docker, or any image, yields a Docker
// runtime; everything else yields a native runtime.
//
//	appName: demo
//	resourceGroup: rg-demo
//	region: westeurope
//	pricingTier: P1v2
//	runtime:
//	  os: Linux
//	  webContainer: Java SE
//	  javaVersion: Java 17
package document
