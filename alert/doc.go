// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package alert signs and verifies Blankcoin network alerts.

Every network carries an alert public key in its chaincfg parameters.  An alert
is only trusted when the ECDSA signature over the double sha256 of its
serialization verifies under that key, so an alert signed for one network is
rejected by the others.
*/
package alert
