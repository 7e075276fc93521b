// folder.go - Defines the Folder model (self-referential tree)

package models

import "time"

// Folder is a named container for videos and other folders. ParentID is a
// nullable self-reference: folders with a nil parent are roots, so the whole
// table forms a forest. The schema does not prevent cycles; the handlers
// reject them before writing (see handlers.validateParent).
type Folder struct {
	ID        uint    `gorm:"primaryKey"`                                      // Unique folder ID (primary key)
	Name      string  `gorm:"size:255;not null"`                               // Folder name (duplicate sibling names are allowed)
	ParentID  *uint   `gorm:"index"`                                           // Optional parent folder (nil = root)
	Parent    *Folder `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"` // Deleting a parent deletes the whole subtree
	CreatedAt time.Time
	UpdatedAt time.Time
}
