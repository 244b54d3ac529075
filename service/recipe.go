package service

import (
	"Umami/config"
	"Umami/dao"
	"Umami/dao/cache"
	"Umami/models"
	"Umami/pkg/response"
	"Umami/pkg/utils"
	"Umami/types"
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"gorm.io/gorm"
)

var _ IRecipeService = (*RecipeService)(nil)

type IRecipeService interface {
	Create(ctx context.Context, userID int64, req *types.CreateRecipeRequest) (*types.RecipeDetail, error)
	Update(ctx context.Context, userID, recipeID int64, req *types.UpdateRecipeRequest) (*types.RecipeDetail, error)
	Delete(ctx context.Context, userID, recipeID int64) error
	Get(ctx context.Context, viewerID, recipeID int64) (*types.RecipeDetail, error)
	List(ctx context.Context, viewerID int64, q types.RecipeListQuery) ([]types.RecipeDetail, int64, error)
	ShareLink(ctx context.Context, recipeID int64) (string, error)
	ResolveShareCode(code string) (int64, bool)
}

type RecipeService struct {
	RecipeDAO       *dao.RecipeDAO
	TagDAO          *dao.TagDAO
	IngredientDAO   *dao.IngredientDAO
	UserDAO         *dao.Users
	FavoriteDAO     *dao.FavoriteDAO
	CartDAO         *dao.ShoppingCartDAO
	SubscriptionDAO *dao.SubscriptionDAO
	FavoriteService IFavoriteService
	CartService     ICartService
	Cache           *cache.RelationCache
	Media           IMediaService
	Config          *config.Config
}

// ValidateRecipePayload 校验菜谱载荷并解析配料数量
// 规则：至少一个标签且不重复；至少一条配料且配料引用不重复；
// 数量必须是正小数；烹饪时间不低于配置的下限
func ValidateRecipePayload(tags []int64, ingredients []types.IngredientRef, cookingTime, minCookingTime int) ([]models.RecipeIngredient, error) {
	if len(tags) == 0 {
		return nil, response.ErrBadRequest("至少选择一个标签")
	}
	seenTags := make(map[int64]struct{}, len(tags))
	for _, id := range tags {
		if _, dup := seenTags[id]; dup {
			return nil, response.ErrBadRequest(fmt.Sprintf("标签 %d 重复", id))
		}
		seenTags[id] = struct{}{}
	}

	if len(ingredients) == 0 {
		return nil, response.ErrBadRequest("至少添加一条配料")
	}
	seenIngredients := make(map[int64]struct{}, len(ingredients))
	lines := make([]models.RecipeIngredient, 0, len(ingredients))
	for _, ref := range ingredients {
		if _, dup := seenIngredients[ref.ID]; dup {
			return nil, response.ErrBadRequest(fmt.Sprintf("配料 %d 重复", ref.ID))
		}
		seenIngredients[ref.ID] = struct{}{}

		// ParseFloat 会放过 "NaN" 和 "Inf"，要单独拦
		amount, err := strconv.ParseFloat(ref.Amount, 64)
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
			return nil, response.ErrBadRequest(fmt.Sprintf("配料 %d 的数量 %q 无法解析", ref.ID, ref.Amount))
		}
		if amount <= 0 {
			return nil, response.ErrBadRequest(fmt.Sprintf("配料 %d 的数量必须大于 0", ref.ID))
		}
		lines = append(lines, models.RecipeIngredient{
			IngredientID: ref.ID,
			Amount:       amount,
		})
	}

	if cookingTime < minCookingTime {
		return nil, response.ErrBadRequest(fmt.Sprintf("烹饪时间不能低于 %d 分钟", minCookingTime))
	}
	return lines, nil
}

// 校验标签和配料引用都真实存在
func (s *RecipeService) checkRefsExist(ctx context.Context, tagIDs []int64, lines []models.RecipeIngredient) error {
	tags, err := s.TagDAO.FindByIDs(ctx, tagIDs)
	if err != nil {
		return err
	}
	if len(tags) != len(tagIDs) {
		return response.ErrBadRequest("存在未知标签")
	}

	ids := make([]int64, 0, len(lines))
	for _, ln := range lines {
		ids = append(ids, ln.IngredientID)
	}
	ingredients, err := s.IngredientDAO.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(ingredients) != len(ids) {
		return response.ErrBadRequest("存在未知配料")
	}
	return nil
}

func (s *RecipeService) Create(ctx context.Context, userID int64, req *types.CreateRecipeRequest) (*types.RecipeDetail, error) {
	lines, err := ValidateRecipePayload(req.Tags, req.Ingredients, req.CookingTime, s.Config.Recipe.MinCookingTime)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefsExist(ctx, req.Tags, lines); err != nil {
		return nil, err
	}

	imageURL, err := s.Media.UploadBase64(ctx, req.Image)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	recipe := &models.Recipe{
		AuthorID:    userID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       imageURL,
		CookingTime: req.CookingTime,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.RecipeDAO.CreateWithRelations(ctx, recipe, lines, req.Tags); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, recipe.ID)
}

func (s *RecipeService) Update(ctx context.Context, userID, recipeID int64, req *types.UpdateRecipeRequest) (*types.RecipeDetail, error) {
	recipe, err := s.RecipeDAO.FindById(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrNotFound("菜谱不存在")
		}
		return nil, err
	}
	if recipe.AuthorID != userID {
		return nil, response.ErrForbidden("只能修改自己的菜谱")
	}

	lines, err := ValidateRecipePayload(req.Tags, req.Ingredients, req.CookingTime, s.Config.Recipe.MinCookingTime)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefsExist(ctx, req.Tags, lines); err != nil {
		return nil, err
	}

	imageURL := recipe.Image
	if req.Image != "" {
		imageURL, err = s.Media.UploadBase64(ctx, req.Image)
		if err != nil {
			return nil, err
		}
	}

	recipe.Name = req.Name
	recipe.Text = req.Text
	recipe.Image = imageURL
	recipe.CookingTime = req.CookingTime
	recipe.UpdatedAt = time.Now()

	// 配料行和标签全量替换，不支持增量合并
	if err := s.RecipeDAO.UpdateWithRelations(ctx, recipe, lines, req.Tags); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, recipeID)
}

func (s *RecipeService) Delete(ctx context.Context, userID, recipeID int64) error {
	recipe, err := s.RecipeDAO.FindById(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ErrNotFound("菜谱不存在")
		}
		return err
	}
	if recipe.AuthorID != userID {
		return response.ErrForbidden("只能删除自己的菜谱")
	}
	if err := s.RecipeDAO.DeleteWithRelations(ctx, recipeID); err != nil {
		return err
	}
	// 菜谱没了，它名下所有人的收藏/购物车标记一并失效
	s.Cache.InvalidateRecipe(ctx, recipeID)
	return nil
}

func (s *RecipeService) Get(ctx context.Context, viewerID, recipeID int64) (*types.RecipeDetail, error) {
	recipe, err := s.RecipeDAO.FindById(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrNotFound("菜谱不存在")
		}
		return nil, err
	}
	details, err := s.buildDetails(ctx, viewerID, []*models.Recipe{recipe})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *RecipeService) List(ctx context.Context, viewerID int64, q types.RecipeListQuery) ([]types.RecipeDetail, int64, error) {
	q.Normalize()
	f := dao.RecipeFilter{
		AuthorID: q.Author,
		TagSlugs: q.Tags,
		Limit:    q.Limit,
		Offset:   q.Offset(),
	}
	// 个人视角过滤必须登录，匿名时直接忽略
	if q.IsFavorited && viewerID > 0 {
		f.FavoritedBy = viewerID
	}
	if q.IsInShoppingCart && viewerID > 0 {
		f.InCartOf = viewerID
	}

	recipes, total, err := s.RecipeDAO.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	details, err := s.buildDetails(ctx, viewerID, recipes)
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

// ShareLink 生成菜谱短链接
func (s *RecipeService) ShareLink(ctx context.Context, recipeID int64) (string, error) {
	exist, err := s.RecipeDAO.IsExist(ctx, "id = ?", recipeID)
	if err != nil {
		return "", err
	}
	if !exist {
		return "", response.ErrNotFound("菜谱不存在")
	}
	code := utils.EncodeHashID(s.Config.Recipe.ShareSalt, recipeID)
	return fmt.Sprintf("%s/s/%s", s.Config.App.BaseURL, code), nil
}

// ResolveShareCode 短码还原菜谱 ID
func (s *RecipeService) ResolveShareCode(code string) (int64, bool) {
	return utils.DecodeHashID(s.Config.Recipe.ShareSalt, code)
}

// buildDetails 批量组装详情视图，避免逐条回表
func (s *RecipeService) buildDetails(ctx context.Context, viewerID int64, recipes []*models.Recipe) ([]types.RecipeDetail, error) {
	if len(recipes) == 0 {
		return []types.RecipeDetail{}, nil
	}

	recipeIDs := make([]int64, 0, len(recipes))
	authorIDs := make([]int64, 0, len(recipes))
	seenAuthors := make(map[int64]struct{}, len(recipes))
	for _, r := range recipes {
		recipeIDs = append(recipeIDs, r.ID)
		if _, ok := seenAuthors[r.AuthorID]; !ok {
			seenAuthors[r.AuthorID] = struct{}{}
			authorIDs = append(authorIDs, r.AuthorID)
		}
	}

	authors, err := s.UserDAO.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	authorMap := make(map[int64]*models.User, len(authors))
	for _, a := range authors {
		authorMap[a.ID] = a
	}

	subscribed, err := s.SubscriptionDAO.SubscribedSet(ctx, viewerID, authorIDs)
	if err != nil {
		return nil, err
	}

	tagMap, err := s.RecipeDAO.ListTags(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}
	lines, err := s.RecipeDAO.ListIngredientLines(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}
	lineMap := make(map[int64][]types.IngredientLine, len(recipeIDs))
	for _, ln := range lines {
		lineMap[ln.RecipeID] = append(lineMap[ln.RecipeID], types.IngredientLine{
			ID:              ln.IngredientID,
			Name:            ln.Name,
			MeasurementUnit: ln.MeasurementUnit,
			Amount:          ln.Amount,
		})
	}

	var favorited, inCart map[int64]struct{}
	if viewerID > 0 {
		if len(recipeIDs) == 1 {
			// 单条详情走缓存优先的标记检查，列表仍然批量回表
			id := recipeIDs[0]
			favorited = make(map[int64]struct{}, 1)
			inCart = make(map[int64]struct{}, 1)
			fav, err := s.FavoriteService.IsFavorited(ctx, viewerID, id)
			if err != nil {
				return nil, err
			}
			if fav {
				favorited[id] = struct{}{}
			}
			in, err := s.CartService.IsInCart(ctx, viewerID, id)
			if err != nil {
				return nil, err
			}
			if in {
				inCart[id] = struct{}{}
			}
		} else {
			if favorited, err = s.FavoriteDAO.ListRecipeIDs(ctx, viewerID, recipeIDs); err != nil {
				return nil, err
			}
			if inCart, err = s.CartDAO.ListRecipeIDs(ctx, viewerID, recipeIDs); err != nil {
				return nil, err
			}
		}
	}

	details := make([]types.RecipeDetail, 0, len(recipes))
	for _, r := range recipes {
		detail := types.RecipeDetail{
			ID:          r.ID,
			Name:        r.Name,
			Text:        r.Text,
			Image:       r.Image,
			CookingTime: r.CookingTime,
			Ingredients: lineMap[r.ID],
			CreatedAt:   r.CreatedAt,
		}
		for _, t := range tagMap[r.ID] {
			detail.Tags = append(detail.Tags, types.TagView{
				ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug,
			})
		}
		if a, ok := authorMap[r.AuthorID]; ok {
			_, isSub := subscribed[a.ID]
			detail.Author = types.UserProfile{
				ID:           a.ID,
				Email:        a.Email,
				Username:     a.Username,
				FirstName:    a.FirstName,
				LastName:     a.LastName,
				Avatar:       a.Avatar,
				IsSubscribed: isSub,
			}
		}
		if favorited != nil {
			_, detail.IsFavorited = favorited[r.ID]
		}
		if inCart != nil {
			_, detail.IsInShoppingCart = inCart[r.ID]
		}
		details = append(details, detail)
	}
	return details, nil
}
