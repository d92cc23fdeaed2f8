package types

// EntityID - идентификатор сущности, уникален в пределах одного мира.
type EntityID uint64
