// Package savegame decodes and encodes saved-game files.
//
// A save file is a flat stream of primitive fields (see package codec) whose
// layout depends on the leading format tag. Five layouts are recognised:
// 2, 7, 8, 9 and 11. The set is closed; any other tag is rejected.
//
// # Layout
//
// Decode reads the file front to back in one pass:
//
//	Header:    format, flags, difficulty, totals, state variables
//	Player:    ship record (first pass), cargo
//	Sector:    seeds, rebel fleet, beacons, quest events
//	Encounter: encounter, nearby ship and its AI, environment, projectiles
//	Ships:     second pass for the player and nearby ships
//	Flagship:  pending stage and room occupancy
//	Trailer:   anything left over is kept as MysteryBytes
//
// Ship records are split in two passes because the second half (drone pods,
// weapon modules, hacking, mind and artillery state) can only be sized once
// the first half has established the ship's weapon and drone lists.
//
// The codec needs the ship floor plans to size room and door lists, so both
// Decode and Encode take a blueprint.Lookup.
//
// # Doors
//
// Doors are keyed by their layout coordinate. On the wire the doors that open
// to space are moved after all interior doors, keeping their relative order.
// blueprint.ShipLayout.SerializedDoorOrder yields that order.
//
// # Variants
//
// Extended system, projectile and drone pod records are sealed interfaces.
// Each read and write site switches over the complete set of implementations
// and fails on anything else.
//
// # Errors
//
// Every failure is fatal: offsets are cumulative, so nothing after a bad field
// can be trusted. Decode returns a *DecodeError and Encode an *EncodeError,
// both carrying the record path, field name, byte offset and offending value.
// The cause is one of the package sentinels or a codec sentinel, reachable
// through errors.Is.
//
// # Mystery Bytes
//
// Trailing bytes the decoder does not understand are captured on read and
// are not written back by Encode. A warning is logged when this drops data.
package savegame
