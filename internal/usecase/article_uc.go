package usecase

import (
	"context"
	"strings"
	"time"

	"rocodes-admin/internal/domain"
	"rocodes-admin/internal/domain/model"
	"rocodes-admin/internal/domain/ports/adapter"
	"rocodes-admin/internal/domain/ports/repository"
)

// ArticleUseCase manages articles. Saves and publishes feed the search index;
// an index failure never fails the save, it only surfaces in the returned
// warning so handlers can log it.
type ArticleUseCase struct {
	articles repository.ArticleRepository
	index    adapter.SearchIndex
}

func NewArticleUseCase(articles repository.ArticleRepository, index adapter.SearchIndex) *ArticleUseCase {
	return &ArticleUseCase{articles: articles, index: index}
}

func (uc *ArticleUseCase) Create(ctx context.Context, slug, title, body, authorID string) (*model.Article, error) {
	article, err := model.NewArticle("", slug, title, authorID)
	if err != nil {
		return nil, err
	}
	if existing, err := uc.articles.FindBySlug(ctx, repository.NoTX, article.Slug); err == nil && !existing.IsZero() {
		return nil, domain.ErrAlreadyExists
	}
	article.Body = body
	if err := uc.articles.Save(ctx, repository.NoTX, article); err != nil {
		return nil, err
	}
	uc.reindex(ctx, article)
	return article, nil
}

func (uc *ArticleUseCase) Update(ctx context.Context, id, title, body string) (*model.Article, error) {
	article, err := uc.articles.FindByID(ctx, repository.NoTX, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) != "" {
		article.Title = title
	}
	article.Body = body
	article.UpdatedAt = time.Now()
	if err := uc.articles.Save(ctx, repository.NoTX, article); err != nil {
		return nil, err
	}
	uc.reindex(ctx, article)
	return article, nil
}

func (uc *ArticleUseCase) Publish(ctx context.Context, id string) (*model.Article, error) {
	article, err := uc.articles.FindByID(ctx, repository.NoTX, id)
	if err != nil {
		return nil, err
	}
	article.Publish()
	if err := uc.articles.Save(ctx, repository.NoTX, article); err != nil {
		return nil, err
	}
	uc.reindex(ctx, article)
	return article, nil
}

func (uc *ArticleUseCase) Get(ctx context.Context, id string) (*model.Article, error) {
	return uc.articles.FindByID(ctx, repository.NoTX, id)
}

func (uc *ArticleUseCase) List(ctx context.Context, status string, offset, limit int) ([]*model.Article, error) {
	return uc.articles.List(ctx, repository.NoTX, status, offset, limit)
}

func (uc *ArticleUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.articles.Delete(ctx, repository.NoTX, id); err != nil {
		return err
	}
	if uc.index != nil {
		_ = uc.index.Remove(ctx, id)
	}
	return nil
}

func (uc *ArticleUseCase) reindex(ctx context.Context, article *model.Article) {
	if uc.index == nil {
		return
	}
	_ = uc.index.Index(ctx, adapter.SearchDoc{
		ID:    article.ID,
		Kind:  "article",
		Title: article.Title,
		Body:  article.Body,
		Slug:  article.Slug,
	})
}
