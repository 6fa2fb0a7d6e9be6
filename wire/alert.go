// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"

	dcrwire "github.com/decred/dcrd/wire"
)

// maxAlertSetEntries is the maximum number of cancelled alert ids and client
// subversions a single alert may list.
const maxAlertSetEntries = 1024

// Alert contains the data of a network alert.  Alerts are broadcast by the
// holder of the network alert key and are only acted upon once their
// serialization has been verified against the signature accompanying it.
type Alert struct {
	// Alert format version.
	Version int32

	// The alert is relayed to peers until this unix time.
	RelayUntil int64

	// The alert is displayed until this unix time.
	Expiration int64

	// Unique id of the alert.
	ID int32

	// Alerts with an id up to and including this one are cancelled.
	Cancel int32

	// Individually cancelled alert ids.
	SetCancel []int32

	// The alert applies to clients with a protocol version in
	// [MinVer, MaxVer].
	MinVer int32
	MaxVer int32

	// The alert applies to these client subversions.  Empty applies to
	// every client.
	SetSubVer []string

	// Relative priority among alerts.
	Priority int32

	// Comment is not displayed.
	Comment string

	// StatusBar is the message displayed to users.
	StatusBar string

	// Reserved for future use.
	Reserved string
}

// Serialize encodes the alert to w.
func (alert *Alert) Serialize(w io.Writer) error {
	err := writeElements(w, alert.Version, alert.RelayUntil, alert.Expiration,
		alert.ID, alert.Cancel)
	if err != nil {
		return err
	}

	if err := writeVarInt(w, uint64(len(alert.SetCancel))); err != nil {
		return err
	}
	for _, id := range alert.SetCancel {
		if err := writeElement(w, id); err != nil {
			return err
		}
	}

	if err := writeElements(w, alert.MinVer, alert.MaxVer); err != nil {
		return err
	}

	if err := writeVarInt(w, uint64(len(alert.SetSubVer))); err != nil {
		return err
	}
	for _, subVer := range alert.SetSubVer {
		if err := dcrwire.WriteVarString(w, codecPver, subVer); err != nil {
			return err
		}
	}

	if err := writeElement(w, alert.Priority); err != nil {
		return err
	}
	for _, str := range []string{alert.Comment, alert.StatusBar, alert.Reserved} {
		if err := dcrwire.WriteVarString(w, codecPver, str); err != nil {
			return err
		}
	}
	return nil
}

// readSetCount reads the number of entries of an alert set and rejects counts
// above maxAlertSetEntries.
func readSetCount(r io.Reader, field string) (uint64, error) {
	const op = "Alert.Deserialize"

	count, err := readVarInt(r)
	if err != nil {
		return 0, err
	}
	if count > maxAlertSetEntries {
		str := fmt.Sprintf("too many %s entries in alert [count %d, max %d]",
			field, count, maxAlertSetEntries)
		return 0, messageError(op, ErrTooManyAlertEntries, str)
	}
	return count, nil
}

// Deserialize decodes an alert from r into the receiver.
func (alert *Alert) Deserialize(r io.Reader) error {
	err := readElements(r, &alert.Version, &alert.RelayUntil,
		&alert.Expiration, &alert.ID, &alert.Cancel)
	if err != nil {
		return err
	}

	count, err := readSetCount(r, "cancel")
	if err != nil {
		return err
	}
	alert.SetCancel = make([]int32, count)
	for i := range alert.SetCancel {
		if err := readElement(r, &alert.SetCancel[i]); err != nil {
			return err
		}
	}

	if err := readElements(r, &alert.MinVer, &alert.MaxVer); err != nil {
		return err
	}

	count, err = readSetCount(r, "subversion")
	if err != nil {
		return err
	}
	alert.SetSubVer = make([]string, count)
	for i := range alert.SetSubVer {
		alert.SetSubVer[i], err = dcrwire.ReadVarString(r, codecPver)
		if err != nil {
			return err
		}
	}

	if err := readElement(r, &alert.Priority); err != nil {
		return err
	}
	for _, str := range []*string{&alert.Comment, &alert.StatusBar, &alert.Reserved} {
		if *str, err = dcrwire.ReadVarString(r, codecPver); err != nil {
			return err
		}
	}
	return nil
}

// Bytes returns the serialized alert.
func (alert *Alert) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := alert.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AppliesTo returns whether the alert targets a client with the passed
// protocol version and subversion.
func (alert *Alert) AppliesTo(version int32, subVer string) bool {
	if version < alert.MinVer || version > alert.MaxVer {
		return false
	}
	if len(alert.SetSubVer) == 0 {
		return true
	}
	for _, s := range alert.SetSubVer {
		if s == subVer {
			return true
		}
	}
	return false
}

// Cancels returns whether the alert cancels the alert with the passed id.
func (alert *Alert) Cancels(id int32) bool {
	if id <= alert.Cancel {
		return true
	}
	for _, c := range alert.SetCancel {
		if c == id {
			return true
		}
	}
	return false
}
