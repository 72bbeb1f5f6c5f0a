package db

import (
	"database/sql"
	"finance-tracker/api/models"
	"fmt"
)

// GetProfileByUserID fetches a user's stored preferences. Returns
// sql.ErrNoRows when the user has never written a profile.
func GetProfileByUserID(userID string) (*models.UserProfile, error) {
	query := `
		SELECT user_id, name, country, currency
		FROM user_profiles
		WHERE user_id = $1
	`
	row := DB.QueryRow(query, userID)
	profile := &models.UserProfile{}
	err := row.Scan(&profile.UserID, &profile.Name, &profile.Country, &profile.Currency)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("error getting profile for user %s: %v", userID, err)
	}
	return profile, nil
}

// UpsertProfile creates or overwrites a user's preferences.
func UpsertProfile(profile *models.UserProfile) error {
	query := `
		INSERT INTO user_profiles (user_id, name, country, currency)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name,
		    country = EXCLUDED.country,
		    currency = EXCLUDED.currency
	`
	_, err := DB.Exec(query, profile.UserID, profile.Name, profile.Country, profile.Currency)
	if err != nil {
		return fmt.Errorf("error upserting profile for user %s: %v", profile.UserID, err)
	}
	return nil
}
