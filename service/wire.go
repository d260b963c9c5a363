package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(ReactionService), "*"),
	wire.Bind(new(IReactionService), new(*ReactionService)),

	wire.Struct(new(FeedService), "*"),
	wire.Bind(new(IFeedService), new(*FeedService)),

	wire.Struct(new(ModerationService), "*"),
	wire.Bind(new(IModerationService), new(*ModerationService)),

	wire.Struct(new(ArticleService), "*"),
	wire.Bind(new(IArticleService), new(*ArticleService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(StatsService), "*"),
	wire.Bind(new(IStatsService), new(*StatsService)),
)
