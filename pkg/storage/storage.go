package storage

// Storage defines the root interface for the entire data layer.
// Components should depend on the more granular interfaces (TransactionStore, PartyReader, etc.) instead of this one.
type Storage interface {
	ApiStore
}
