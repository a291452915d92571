// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/paperbase/paperbase/gen/ent/document"
	"github.com/paperbase/paperbase/gen/ent/user"
)

// UserCreate is the builder for creating a User entity.
type UserCreate struct {
	config
	mutation *UserMutation
	hooks    []Hook
}

// SetPhone sets the "phone" field.
func (_c *UserCreate) SetPhone(v string) *UserCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *UserCreate) SetPasswordHash(v string) *UserCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetName sets the "name" field.
func (_c *UserCreate) SetName(v string) *UserCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *UserCreate) SetRole(v string) *UserCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *UserCreate) SetNillableRole(v *string) *UserCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetCanUpload sets the "can_upload" field.
func (_c *UserCreate) SetCanUpload(v bool) *UserCreate {
	_c.mutation.SetCanUpload(v)
	return _c
}

// SetNillableCanUpload sets the "can_upload" field if the given value is not nil.
func (_c *UserCreate) SetNillableCanUpload(v *bool) *UserCreate {
	if v != nil {
		_c.SetCanUpload(*v)
	}
	return _c
}

// SetCanViewAll sets the "can_view_all" field.
func (_c *UserCreate) SetCanViewAll(v bool) *UserCreate {
	_c.mutation.SetCanViewAll(v)
	return _c
}

// SetNillableCanViewAll sets the "can_view_all" field if the given value is not nil.
func (_c *UserCreate) SetNillableCanViewAll(v *bool) *UserCreate {
	if v != nil {
		_c.SetCanViewAll(*v)
	}
	return _c
}

// SetCanEdit sets the "can_edit" field.
func (_c *UserCreate) SetCanEdit(v bool) *UserCreate {
	_c.mutation.SetCanEdit(v)
	return _c
}

// SetNillableCanEdit sets the "can_edit" field if the given value is not nil.
func (_c *UserCreate) SetNillableCanEdit(v *bool) *UserCreate {
	if v != nil {
		_c.SetCanEdit(*v)
	}
	return _c
}

// SetCanDelete sets the "can_delete" field.
func (_c *UserCreate) SetCanDelete(v bool) *UserCreate {
	_c.mutation.SetCanDelete(v)
	return _c
}

// SetNillableCanDelete sets the "can_delete" field if the given value is not nil.
func (_c *UserCreate) SetNillableCanDelete(v *bool) *UserCreate {
	if v != nil {
		_c.SetCanDelete(*v)
	}
	return _c
}

// SetCanReprocess sets the "can_reprocess" field.
func (_c *UserCreate) SetCanReprocess(v bool) *UserCreate {
	_c.mutation.SetCanReprocess(v)
	return _c
}

// SetNillableCanReprocess sets the "can_reprocess" field if the given value is not nil.
func (_c *UserCreate) SetNillableCanReprocess(v *bool) *UserCreate {
	if v != nil {
		_c.SetCanReprocess(*v)
	}
	return _c
}

// SetCanExport sets the "can_export" field.
func (_c *UserCreate) SetCanExport(v bool) *UserCreate {
	_c.mutation.SetCanExport(v)
	return _c
}

// SetNillableCanExport sets the "can_export" field if the given value is not nil.
func (_c *UserCreate) SetNillableCanExport(v *bool) *UserCreate {
	if v != nil {
		_c.SetCanExport(*v)
	}
	return _c
}

// SetCanManageUsers sets the "can_manage_users" field.
func (_c *UserCreate) SetCanManageUsers(v bool) *UserCreate {
	_c.mutation.SetCanManageUsers(v)
	return _c
}

// SetNillableCanManageUsers sets the "can_manage_users" field if the given value is not nil.
func (_c *UserCreate) SetNillableCanManageUsers(v *bool) *UserCreate {
	if v != nil {
		_c.SetCanManageUsers(*v)
	}
	return _c
}

// SetCanViewAudit sets the "can_view_audit" field.
func (_c *UserCreate) SetCanViewAudit(v bool) *UserCreate {
	_c.mutation.SetCanViewAudit(v)
	return _c
}

// SetNillableCanViewAudit sets the "can_view_audit" field if the given value is not nil.
func (_c *UserCreate) SetNillableCanViewAudit(v *bool) *UserCreate {
	if v != nil {
		_c.SetCanViewAudit(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *UserCreate) SetActive(v bool) *UserCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *UserCreate) SetNillableActive(v *bool) *UserCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserCreate) SetCreatedAt(v time.Time) *UserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableCreatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserCreate) SetUpdatedAt(v time.Time) *UserCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableUpdatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserCreate) SetID(v uuid.UUID) *UserCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UserCreate) SetNillableID(v *uuid.UUID) *UserCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *UserCreate) AddDocumentIDs(ids ...uuid.UUID) *UserCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *UserCreate) AddDocuments(v ...*Document) *UserCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_c *UserCreate) Mutation() *UserMutation {
	return _c.mutation
}

// Save creates the User in the database.
func (_c *UserCreate) Save(ctx context.Context) (*User, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserCreate) SaveX(ctx context.Context) *User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserCreate) defaults() {
	if _, ok := _c.mutation.Role(); !ok {
		v := user.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.CanUpload(); !ok {
		v := user.DefaultCanUpload
		_c.mutation.SetCanUpload(v)
	}
	if _, ok := _c.mutation.CanViewAll(); !ok {
		v := user.DefaultCanViewAll
		_c.mutation.SetCanViewAll(v)
	}
	if _, ok := _c.mutation.CanEdit(); !ok {
		v := user.DefaultCanEdit
		_c.mutation.SetCanEdit(v)
	}
	if _, ok := _c.mutation.CanDelete(); !ok {
		v := user.DefaultCanDelete
		_c.mutation.SetCanDelete(v)
	}
	if _, ok := _c.mutation.CanReprocess(); !ok {
		v := user.DefaultCanReprocess
		_c.mutation.SetCanReprocess(v)
	}
	if _, ok := _c.mutation.CanExport(); !ok {
		v := user.DefaultCanExport
		_c.mutation.SetCanExport(v)
	}
	if _, ok := _c.mutation.CanManageUsers(); !ok {
		v := user.DefaultCanManageUsers
		_c.mutation.SetCanManageUsers(v)
	}
	if _, ok := _c.mutation.CanViewAudit(); !ok {
		v := user.DefaultCanViewAudit
		_c.mutation.SetCanViewAudit(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := user.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := user.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := user.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := user.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserCreate) check() error {
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`ent: missing required field "User.phone"`)}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := user.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "User.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PasswordHash(); !ok {
		return &ValidationError{Name: "password_hash", err: errors.New(`ent: missing required field "User.password_hash"`)}
	}
	if v, ok := _c.mutation.PasswordHash(); ok {
		if err := user.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "User.password_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "User.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "User.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CanUpload(); !ok {
		return &ValidationError{Name: "can_upload", err: errors.New(`ent: missing required field "User.can_upload"`)}
	}
	if _, ok := _c.mutation.CanViewAll(); !ok {
		return &ValidationError{Name: "can_view_all", err: errors.New(`ent: missing required field "User.can_view_all"`)}
	}
	if _, ok := _c.mutation.CanEdit(); !ok {
		return &ValidationError{Name: "can_edit", err: errors.New(`ent: missing required field "User.can_edit"`)}
	}
	if _, ok := _c.mutation.CanDelete(); !ok {
		return &ValidationError{Name: "can_delete", err: errors.New(`ent: missing required field "User.can_delete"`)}
	}
	if _, ok := _c.mutation.CanReprocess(); !ok {
		return &ValidationError{Name: "can_reprocess", err: errors.New(`ent: missing required field "User.can_reprocess"`)}
	}
	if _, ok := _c.mutation.CanExport(); !ok {
		return &ValidationError{Name: "can_export", err: errors.New(`ent: missing required field "User.can_export"`)}
	}
	if _, ok := _c.mutation.CanManageUsers(); !ok {
		return &ValidationError{Name: "can_manage_users", err: errors.New(`ent: missing required field "User.can_manage_users"`)}
	}
	if _, ok := _c.mutation.CanViewAudit(); !ok {
		return &ValidationError{Name: "can_view_audit", err: errors.New(`ent: missing required field "User.can_view_audit"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "User.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "User.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "User.updated_at"`)}
	}
	return nil
}

func (_c *UserCreate) sqlSave(ctx context.Context) (*User, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserCreate) createSpec() (*User, *sqlgraph.CreateSpec) {
	var (
		_node = &User{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(user.Table, sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(user.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.CanUpload(); ok {
		_spec.SetField(user.FieldCanUpload, field.TypeBool, value)
		_node.CanUpload = value
	}
	if value, ok := _c.mutation.CanViewAll(); ok {
		_spec.SetField(user.FieldCanViewAll, field.TypeBool, value)
		_node.CanViewAll = value
	}
	if value, ok := _c.mutation.CanEdit(); ok {
		_spec.SetField(user.FieldCanEdit, field.TypeBool, value)
		_node.CanEdit = value
	}
	if value, ok := _c.mutation.CanDelete(); ok {
		_spec.SetField(user.FieldCanDelete, field.TypeBool, value)
		_node.CanDelete = value
	}
	if value, ok := _c.mutation.CanReprocess(); ok {
		_spec.SetField(user.FieldCanReprocess, field.TypeBool, value)
		_node.CanReprocess = value
	}
	if value, ok := _c.mutation.CanExport(); ok {
		_spec.SetField(user.FieldCanExport, field.TypeBool, value)
		_node.CanExport = value
	}
	if value, ok := _c.mutation.CanManageUsers(); ok {
		_spec.SetField(user.FieldCanManageUsers, field.TypeBool, value)
		_node.CanManageUsers = value
	}
	if value, ok := _c.mutation.CanViewAudit(); ok {
		_spec.SetField(user.FieldCanViewAudit, field.TypeBool, value)
		_node.CanViewAudit = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(user.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DocumentsTable,
			Columns: []string{user.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UserCreateBulk is the builder for creating many User entities in bulk.
type UserCreateBulk struct {
	config
	err      error
	builders []*UserCreate
}

// Save creates the User entities in the database.
func (_c *UserCreateBulk) Save(ctx context.Context) ([]*User, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*User, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *UserCreateBulk) SaveX(ctx context.Context) []*User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
