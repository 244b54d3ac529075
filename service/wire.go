package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(IngredientService), "*"),
	wire.Bind(new(IIngredientService), new(*IngredientService)),

	wire.Struct(new(TagService), "*"),
	wire.Bind(new(ITagService), new(*TagService)),

	wire.Struct(new(RecipeService), "*"),
	wire.Bind(new(IRecipeService), new(*RecipeService)),

	wire.Struct(new(FavoriteService), "*"),
	wire.Bind(new(IFavoriteService), new(*FavoriteService)),

	wire.Struct(new(CartService), "*"),
	wire.Bind(new(ICartService), new(*CartService)),

	wire.Struct(new(SubscribeService), "*"),
	wire.Bind(new(ISubscribeService), new(*SubscribeService)),

	wire.Struct(new(ShoppingListService), "*"),
	wire.Bind(new(IShoppingListService), new(*ShoppingListService)),

	NewMediaService,
)
