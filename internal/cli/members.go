package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cebip/internal/common"
	"github.com/dmitrijs2005/cebip/internal/models"
)

const defaultMemberPassword = "defaultpassword123"

var (
	statusOptions     = []string{string(models.StatusActive), string(models.StatusInactive), string(models.StatusSuspended)}
	membershipOptions = []string{string(models.MembershipBasic), string(models.MembershipPremium), string(models.MembershipVIP)}
)

// AddMember prompts for a new member. An empty password falls back to a
// fixed default that the administrator is expected to hand out.
func (a *App) AddMember(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	if name == "" || email == "" {
		return fmt.Errorf("name and email are required")
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	status, err := getChoice(a.reader, a.out, "Status", statusOptions, string(models.StatusActive))
	if err != nil {
		return err
	}
	membership, err := getChoice(a.reader, a.out, "Membership", membershipOptions, string(models.MembershipBasic))
	if err != nil {
		return err
	}
	avatar, err := getSimpleText(a.reader, "Avatar URL (optional)", a.out)
	if err != nil {
		return err
	}

	pw := string(password)
	if pw == "" {
		pw = defaultMemberPassword
	}

	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	u, err := a.repo.CreateUser(ctx, models.NewUser{
		Email:          email,
		Password:       pw,
		Name:           name,
		Role:           models.RoleMember,
		Status:         models.Status(status),
		MembershipType: models.MembershipType(membership),
		Avatar:         avatar,
	})
	if err != nil {
		return err
	}

	a.log.Info(ctx, "member created", "user_id", u.ID)
	fmt.Fprintf(a.out, "Member %s created with id %s\n", u.Name, u.ID)
	return nil
}

func (a *App) askID(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) findMember(ctx context.Context, id string) (models.User, error) {
	for _, u := range a.repo.GetUsers(ctx) {
		if u.ID == id && u.IsMember() {
			return u, nil
		}
	}
	return models.User{}, common.ErrorNotFound
}

// EditMember prompts for each editable field, showing the current value.
// Empty answers keep the field as it is.
func (a *App) EditMember(ctx context.Context, args []string) error {
	id, err := a.askID(args, "Member id to edit")
	if err != nil {
		return err
	}

	current, err := a.findMember(ctx, id)
	if err != nil {
		return err
	}

	var patch models.UserPatch

	if err := a.editText("Name", current.Name, &patch.Name); err != nil {
		return err
	}
	if err := a.editText("Email", current.Email, &patch.Email); err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	if len(password) > 0 {
		pw := string(password)
		patch.Password = &pw
	}

	status, err := getChoice(a.reader, a.out, "Status", statusOptions, string(current.Status))
	if err != nil {
		return err
	}
	if s := models.Status(status); s != current.Status {
		patch.Status = &s
	}

	membership, err := getChoice(a.reader, a.out, "Membership", membershipOptions, membershipLabel(current.MembershipType))
	if err != nil {
		return err
	}
	if m := models.MembershipType(membership); m != current.MembershipType {
		patch.MembershipType = &m
	}

	if err := a.editText("Avatar URL", current.Avatar, &patch.Avatar); err != nil {
		return err
	}

	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	updated, err := a.repo.UpdateUser(ctx, id, patch)
	if err != nil {
		return err
	}
	if updated == nil {
		return common.ErrorNotFound
	}

	fmt.Fprintf(a.out, "Member %s updated.\n", updated.Name)
	return nil
}

// DeleteMember removes a member after confirmation.
func (a *App) DeleteMember(ctx context.Context, args []string) error {
	id, err := a.askID(args, "Member id to delete")
	if err != nil {
		return err
	}

	member, err := a.findMember(ctx, id)
	if err != nil {
		return err
	}

	ok, err := confirm(a.reader, a.out, fmt.Sprintf("Delete %s?", member.Name))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	removed, err := a.repo.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return common.ErrorNotFound
	}

	a.log.Info(ctx, "member deleted", "user_id", id)
	fmt.Fprintf(a.out, "Member %s deleted.\n", member.Name)
	return nil
}
