// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

// Package provider describes the target Kubernetes service provider so
// builders can customize generated objects for it.
package provider

import "encoding/base64"

// Known providers.
const (
	Generic      = "generic"
	Google       = "google"
	Amazon       = "amazon"
	DigitalOcean = "digitalocean"
	Kind         = "kind"
	K3D          = "k3d"
)

// Known provider services.
const (
	ServiceGeneric                = "generic"
	ServiceGoogleGKE              = "google-gke"
	ServiceAmazonEKS              = "amazon-eks"
	ServiceDigitalOceanKubernetes = "digitalocean-kubernetes"
)

// Provider is a target Kubernetes service provider (Google, Amazon, ...)
// and the Kubernetes service within it (GKE, EKS, ...).
type Provider struct {
	Provider string
	Service  string
}

// NewGeneric returns the provider used when no specific target applies.
func NewGeneric() *Provider {
	return &Provider{Provider: Generic, Service: ServiceGeneric}
}

// SecretDataEncode encodes a secret value the way the provider expects.
// The default is base64 over UTF-8 text.
func (p *Provider) SecretDataEncode(data string) string {
	return string(p.SecretDataEncodeBytes([]byte(data)))
}

// SecretDataEncodeBytes encodes a raw secret value, returning the encoded
// bytes.
func (p *Provider) SecretDataEncodeBytes(data []byte) []byte {
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(data)))
	base64.StdEncoding.Encode(encoded, data)
	return encoded
}

// ObjectsCheck lets a provider validate or adjust generated objects before
// they are returned to the caller. The default accepts them unchanged.
func (p *Provider) ObjectsCheck(items []interface{}) []interface{} {
	return items
}
