package domain

type Customer struct {
	ID         string `json:"customer_id"`
	Name       string `json:"name"`
	PassportNo string `json:"passport_no"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
}
