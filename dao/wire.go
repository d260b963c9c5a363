//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewArticleDAO,
	NewArticleReactionDAO,
	NewUserStatsDAO,
	NewUserArticleBlockDAO,
	NewUserPreferenceDAO,
	NewCategoryDAO,
)
