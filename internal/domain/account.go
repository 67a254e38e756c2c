package domain

// Account is the profile shared by customers and managers.
type Account struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	AvatarURL string `json:"url_avatar,omitempty"`
	Role      Role   `json:"role,omitempty"`
}
