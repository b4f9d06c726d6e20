package models

// Admin is a document of Authorized-Admins/document/admin.
type Admin struct {
	ID    string `firestore:"-" json:"id"`
	Email string `firestore:"email" json:"email"`
	Name  string `firestore:"name" json:"name"`
	Role  string `firestore:"role" json:"role"`
}
