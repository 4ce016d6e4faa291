package domain

type Property struct {
	ID        int32  `json:"id"`
	OwnerID   int32  `json:"owner_id"`
	Owner     *User  `json:"owner,omitempty"` // Populated when fetching property details
	Name      string `json:"name"`
	Address   string `json:"address"`
	District  string `json:"district"`
	CreatedOn string `json:"created_on"`
}
