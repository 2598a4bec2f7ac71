package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/cms-admin-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlogPostQuery struct {
	Titl   string `json:"titl"`
	Tag    string `json:"tag"`
	PstgYn string `json:"pstg_yn" validate:"omitempty,oneof=Y N"`
}

func (q BlogPostQuery) Filter() Filter {
	return Filter{
		Contains("titl", q.Titl),
		Contains("tag", q.Tag),
		Eq("pstg_yn", q.PstgYn),
	}
}

// editableBlogColumns are overwritten by Update. bltn_no and the inpt_* audit pair are not.
var editableBlogColumns = []string{
	"corp_cd", "sys_cls_cd", "bltn_cls_cd", "pstg_yn", "atch_file_no",
	"titl", "contt", "tag", "thumbnail_img_url", "updt_dtm", "updt_usr_id",
}

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

func notDeleted() clause.Expression {
	return clause.Neq{Column: clause.Column{Name: "del_yn"}, Value: models.FlagYes}
}

// Search returns one page of live posts, newest first
func (r *BlogPostRepo) Search(ctx context.Context, q BlogPostQuery, page Page) (Result[models.BlogPost], error) {
	return Search[models.BlogPost](ctx, r.db, Query{
		Base:   []clause.Expression{notDeleted()},
		Filter: q.Filter(),
		Order: []clause.OrderByColumn{
			{Column: clause.Column{Name: "inpt_dtm"}, Desc: true},
			{Column: clause.Column{Name: "bltn_no"}},
		},
	}, page)
}

// FindByID returns gorm.ErrRecordNotFound for missing and soft-deleted posts
func (r *BlogPostRepo) FindByID(ctx context.Context, bltnNo string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: "bltn_no"}, Value: bltnNo}).
		Where(notDeleted()).
		Take(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add assigns the post number and audit columns before inserting
func (r *BlogPostRepo) Add(ctx context.Context, post *models.BlogPost, editorID string) error {
	post.BltnNo = uuid.NewString()
	if post.PstgYn == "" {
		post.PstgYn = models.FlagNo
	}
	now := time.Now()
	post.DelYn = models.FlagNo
	post.InptDtm, post.UpdtDtm = now, now
	post.InptUsrID, post.UpdtUsrID = editorID, editorID

	return r.db.WithContext(ctx).Create(post).Error
}

// Update replaces the editable columns of a live post. The post number is immutable.
func (r *BlogPostRepo) Update(ctx context.Context, post *models.BlogPost, editorID string) error {
	if post.PstgYn == "" {
		post.PstgYn = models.FlagNo
	}
	post.UpdtDtm = time.Now()
	post.UpdtUsrID = editorID

	result := r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where(clause.Eq{Column: clause.Column{Name: "bltn_no"}, Value: post.BltnNo}).
		Where(notDeleted()).
		Select(editableBlogColumns).
		Updates(post)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete flags the post as deleted; the row is kept
func (r *BlogPostRepo) Delete(ctx context.Context, bltnNo string, editorID string) error {
	result := r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where(clause.Eq{Column: clause.Column{Name: "bltn_no"}, Value: bltnNo}).
		Where(notDeleted()).
		Updates(map[string]any{
			"del_yn":      models.FlagYes,
			"updt_dtm":    time.Now(),
			"updt_usr_id": editorID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
