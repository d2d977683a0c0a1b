package repository

import (
	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	"github.com/wekeepgrowing/semo-todo/internal/infrastructure/db/model"
)

func toUserModel(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		HashedPassword: u.HashedPassword,
		InviteCode:     u.InviteCode,
		IsActive:       u.IsActive,
		IsSuperuser:    u.IsSuperuser,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func toUserEntity(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:             m.ID,
		Email:          m.Email,
		FullName:       m.FullName,
		HashedPassword: m.HashedPassword,
		InviteCode:     m.InviteCode,
		IsActive:       m.IsActive,
		IsSuperuser:    m.IsSuperuser,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toTodoModel(t *entity.Todo) *model.TodoModel {
	return &model.TodoModel{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		OwnerID:     t.OwnerID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTodoEntity(m *model.TodoModel) *entity.Todo {
	return &entity.Todo{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Status:      entity.TodoStatus(m.Status),
		OwnerID:     m.OwnerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toTodoEntities(models []model.TodoModel) []*entity.Todo {
	todos := make([]*entity.Todo, 0, len(models))
	for i := range models {
		todos = append(todos, toTodoEntity(&models[i]))
	}
	return todos
}

func toSubTodoModel(s *entity.SubTodo) *model.SubTodoModel {
	return &model.SubTodoModel{
		ID:          s.ID,
		TodoID:      s.TodoID,
		Title:       s.Title,
		Description: s.Description,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toSubTodoEntity(m *model.SubTodoModel) *entity.SubTodo {
	return &entity.SubTodo{
		ID:          m.ID,
		TodoID:      m.TodoID,
		Title:       m.Title,
		Description: m.Description,
		Status:      entity.TodoStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toCollaboratorModel(c *entity.Collaborator) *model.CollaboratorModel {
	return &model.CollaboratorModel{
		ID:        c.ID,
		TodoID:    c.TodoID,
		UserID:    c.UserID,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
	}
}

func toCollaboratorEntity(m *model.CollaboratorModel) *entity.Collaborator {
	return &entity.Collaborator{
		ID:        m.ID,
		TodoID:    m.TodoID,
		UserID:    m.UserID,
		Status:    entity.CollaborationStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func toCollaboratorDetail(r *model.CollaboratorDetailRow) *entity.CollaboratorDetail {
	return &entity.CollaboratorDetail{
		UserID:     r.UserID,
		TodoID:     r.TodoID,
		Email:      r.Email,
		FullName:   r.FullName,
		InviteCode: r.InviteCode,
		Status:     entity.CollaborationStatus(r.Status),
		CreatedAt:  r.CreatedAt,
	}
}

func toCategoryModel(c *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:          c.ID,
		OwnerID:     c.OwnerID,
		Title:       c.Title,
		Description: c.Description,
		Level:       string(c.Level),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCategoryEntity(m *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		Description: m.Description,
		Level:       entity.CategoryLevel(m.Level),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
