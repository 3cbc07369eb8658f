package services

import (
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterFirstUserBecomesAdmin(t *testing.T) {
	setupTestDB()
	os.Setenv("JWT_SECRET", "test_secret")

	first, err := RegisterUser("owner@example.com", "password1")
	assert.NoError(t, err)
	assert.Equal(t, "admin", first.Role)

	second, err := RegisterUser("miner@example.com", "password2")
	assert.NoError(t, err)
	assert.Equal(t, "user", second.Role)

	_, err = RegisterUser("miner@example.com", "password3")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginUser(t *testing.T) {
	setupTestDB()
	os.Setenv("JWT_SECRET", "test_secret")

	_, err := RegisterUser("miner@example.com", "password1")
	assert.NoError(t, err)

	token, user, err := LoginUser("miner@example.com", "password1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "miner@example.com", user.Email)

	_, _, err = LoginUser("miner@example.com", "wrong")
	assert.Error(t, err)

	_, _, err = LoginUser("nobody@example.com", "password1")
	assert.Error(t, err)
}

func TestUpdateProfilePartialFields(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	user := seedUser(0, 0)

	addr := "bc1qsomeaddress"
	notify := true
	updated, err := UpdateProfile(user.ID, ProfileUpdate{
		BitcoinAddress:              &addr,
		ReceivePaymentNotifications: &notify,
	})
	assert.NoError(t, err)
	assert.Equal(t, "bc1qsomeaddress", updated.BitcoinAddress)
	assert.True(t, updated.ReceivePaymentNotifications)

	// Untouched fields keep their values
	assert.Equal(t, "", updated.LitecoinAddress)

	_, err = UpdateProfile(user.ID, ProfileUpdate{})
	assert.Error(t, err)
}

func TestUpdateAccountRequiresReauth(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.DefaultCost)
	user := models.User{Email: "miner@example.com", Password: string(hashed), Role: "user", Version: 1}
	database.DB.Create(&user)

	_, err := UpdateAccount(user.ID, "", "new@example.com", "")
	assert.ErrorIs(t, err, ErrReauthRequired)

	_, err = UpdateAccount(user.ID, "wrongpassword", "new@example.com", "")
	assert.ErrorIs(t, err, ErrWrongPassword)

	updated, err := UpdateAccount(user.ID, "oldpassword", "new@example.com", "newpassword")
	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpassword")))
}

func TestUpdateAccountEmailTaken(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("pw123456"), bcrypt.DefaultCost)
	a := models.User{Email: "a@example.com", Password: string(hashed), Role: "user", Version: 1}
	b := models.User{Email: "b@example.com", Password: string(hashed), Role: "user", Version: 1}
	database.DB.Create(&a)
	database.DB.Create(&b)

	_, err := UpdateAccount(a.ID, "pw123456", "b@example.com", "")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUpdateUserOptimisticLock(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	user := seedUser(0, 0)

	// Someone else bumps the version between read and write
	updated, err := UpdateUser(user.ID, map[string]interface{}{"role": "admin"}, "admin@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "admin", updated.Role)
	assert.Equal(t, user.Version+1, updated.Version)
}
