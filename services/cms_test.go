package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petshop-admin/models"
)

func TestCMSUpdate(t *testing.T) {
	t.Run("AlwaysStampsThemeAndActive", func(t *testing.T) {
		set, err := CMSUpdate(Input{}, "summer")
		require.NoError(t, err)

		assert.Equal(t, "summer", set["theme"])
		assert.Equal(t, true, set["is_active"])
		assert.Contains(t, set, "updated_at")
	})

	t.Run("NavMenuFromJSONString", func(t *testing.T) {
		set, err := CMSUpdate(Input{
			"nav_menu": `[{"label":"Home","url":"/"},{"label":"Shop","url":"/shop"}]`,
		}, "summer")
		require.NoError(t, err)

		menu, ok := set["nav_menu"].([]models.MenuItem)
		require.True(t, ok)
		require.Len(t, menu, 2)
		assert.Equal(t, "Home", menu[0].Label)
	})

	t.Run("NavMenuFromDecodedJSON", func(t *testing.T) {
		set, err := CMSUpdate(Input{
			"nav_menu": []interface{}{
				map[string]interface{}{"label": "Home", "url": "/"},
			},
		}, "summer")
		require.NoError(t, err)

		menu := set["nav_menu"].([]models.MenuItem)
		require.Len(t, menu, 1)
		assert.Equal(t, "/", menu[0].URL)
	})

	t.Run("NavMenuCapEnforced", func(t *testing.T) {
		items := make([]string, models.MaxNavMenuItems+1)
		for i := range items {
			items[i] = `{"label":"x","url":"/"}`
		}
		payload := "[" + strings.Join(items, ",") + "]"

		_, err := CMSUpdate(Input{"nav_menu": payload}, "summer")
		assert.Error(t, err)
	})

	t.Run("MalformedMenuRejected", func(t *testing.T) {
		_, err := CMSUpdate(Input{"nav_menu": "{not json"}, "summer")
		assert.Error(t, err)
	})

	t.Run("FooterDecoded", func(t *testing.T) {
		set, err := CMSUpdate(Input{
			"footer": `{"contact_email":"help@petshop.example","menu":[{"label":"FAQ","url":"/faq"}]}`,
		}, "summer")
		require.NoError(t, err)

		footer, ok := set["footer"].(*models.FooterData)
		require.True(t, ok)
		require.Len(t, footer.Menu, 1)
		assert.Equal(t, "FAQ", footer.Menu[0].Label)
		assert.Equal(t, "help@petshop.example", footer.ContactEmail)
	})
}
