// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
)

// Registry holds the parameters of every supported network along with the
// network selected for use by the process.
//
// Selection is a startup-only operation: the application selects a network
// once and then calls Seal before any other subsystem reads the active
// parameters.  Registry performs no synchronization, so the selection must
// happen before concurrent reads begin.
type Registry struct {
	params [numNetworks]*Params
	active *Params
	sealed bool
}

// NewRegistry builds and verifies the parameters of every supported network
// and returns a registry with the main network active.
func NewRegistry() (*Registry, error) {
	var r Registry
	for id := NetID(0); id < numNetworks; id++ {
		params, err := NewParams(id)
		if err != nil {
			return nil, err
		}
		r.params[id] = params
	}
	r.active = r.params[MainNet]
	return &r, nil
}

// Active returns the parameters of the selected network.
func (r *Registry) Active() *Params {
	return r.active
}

// Lookup returns the parameters of the passed network.
func (r *Registry) Lookup(id NetID) (*Params, error) {
	if !id.IsValid() {
		str := fmt.Sprintf("network %v is not supported", id)
		return nil, paramsError(ErrUnknownNetwork, str)
	}
	return r.params[id], nil
}

// SelectNetwork makes the passed network active.
//
// It panics when the network is not supported or the registry is sealed since
// both are programming errors.
func (r *Registry) SelectNetwork(id NetID) {
	if r.sealed {
		panic(fmt.Sprintf("attempt to select %v after the network "+
			"selection was sealed", id))
	}
	if !id.IsValid() {
		panic(fmt.Sprintf("attempt to select unsupported network %v", id))
	}
	r.active = r.params[id]
	log.Infof("Selected the %s network", r.active.Name)
}

// SelectNetworkFromFlags selects the network requested by the testnet and
// regtest command line flags, or the main network when neither is set.  It
// returns false without changing the selection when both are set.
func (r *Registry) SelectNetworkFromFlags(testnet, regtest bool) bool {
	id, err := ResolveNetwork(testnet, regtest)
	if err != nil {
		log.Warnf("Not selecting a network: %v", err)
		return false
	}
	r.SelectNetwork(id)
	return true
}

// Seal ends the startup phase.  Any later attempt to select a network panics.
func (r *Registry) Seal() {
	r.sealed = true
	log.Debugf("Network selection sealed on %s", r.active.Name)
}

// Sealed returns whether Seal has been called.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// ResolveNetwork returns the network requested by the testnet and regtest
// command line flags.  Neither flag selects the main network.  Both flags are
// rejected with ErrConflictingNetworks.
func ResolveNetwork(testnet, regtest bool) (NetID, error) {
	switch {
	case testnet && regtest:
		str := "the testnet and regtest networks can't be used together " +
			"-- choose one of the two"
		return MainNet, paramsError(ErrConflictingNetworks, str)
	case regtest:
		return RegNet, nil
	case testnet:
		return TestNet, nil
	}
	return MainNet, nil
}

// defaultRegistry is the process-wide registry used by the package level
// selection functions.
var defaultRegistry = mustNewRegistry()

// mustNewRegistry returns a new registry and panics if the parameters of any
// network cannot be built.
func mustNewRegistry() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// ActiveParams returns the parameters of the network selected in the
// process-wide registry.  It is the main network until another is selected.
func ActiveParams() *Params {
	return defaultRegistry.Active()
}

// SelectParams selects the passed network in the process-wide registry.  See
// Registry.SelectNetwork.
func SelectParams(id NetID) {
	defaultRegistry.SelectNetwork(id)
}

// SelectParamsFromFlags selects the network requested by the testnet and
// regtest flags in the process-wide registry.  See
// Registry.SelectNetworkFromFlags.
func SelectParamsFromFlags(testnet, regtest bool) bool {
	return defaultRegistry.SelectNetworkFromFlags(testnet, regtest)
}
