//go:build linux || freebsd || darwin
// +build linux freebsd darwin

package samefile

// Dev returns the device number component of the identity key
func (h *Handle) Dev() uint64 {
	return h.key.Dev
}

// Ino returns the inode number component of the identity key
func (h *Handle) Ino() uint64 {
	return h.key.Ino
}
