package samefile

// Vol returns the volume serial number component of the identity key
func (h *Handle) Vol() uint32 {
	return h.key.Vol
}

// Index returns the 64-bit file index component of the identity key
func (h *Handle) Index() uint64 {
	return uint64(h.key.IdxHi)<<32 | uint64(h.key.IdxLo)
}
