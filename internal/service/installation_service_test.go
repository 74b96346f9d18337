package service

import (
	"testing"

	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) device(t *testing.T, imei string) *dto.DeviceResponse {
	t.Helper()
	d, err := e.devices.Create(e.ctx, &dto.CreateDeviceRequest{Imei: imei, Model: "FMB920", Provider: "IAM"})
	require.NoError(t, err)
	return d
}

func (e *testEnv) installer(t *testing.T, name, city string) *dto.InstallerResponse {
	t.Helper()
	i, err := e.installers.Create(e.ctx, &dto.CreateInstallerRequest{Name: name, City: city})
	require.NoError(t, err)
	return i
}

func (e *testEnv) car(t *testing.T, clientId uuid.UUID, plate string) *dto.CarResponse {
	t.Helper()
	c, err := e.cars.Create(e.ctx, &dto.CreateCarRequest{ClientId: clientId, Brand: "Dacia", Model: "Logan", LicensePlate: plate})
	require.NoError(t, err)
	return c
}

func TestDeviceCreate_ImeiMustBeFifteenDigits(t *testing.T) {
	env := newTestEnv(t)

	d := env.device(t, "352099001761481")
	assert.Equal(t, "active", d.Status)
	assert.False(t, d.Installed)

	for _, imei := range []string{"35209900176148", "3520990017614812", "35209900176148A", ""} {
		_, err := env.devices.Create(env.ctx, &dto.CreateDeviceRequest{Imei: imei})
		assert.True(t, apperror.IsValidation(err), imei)
	}

	_, err := env.devices.Create(env.ctx, &dto.CreateDeviceRequest{Imei: "352099001761481"})
	assert.True(t, apperror.IsConflict(err))

	other := env.device(t, "352099001761499")
	_, err = env.devices.Update(env.ctx, &dto.UpdateDeviceRequest{Id: other.Id, Imei: d.Imei})
	assert.True(t, apperror.IsConflict(err))

	updated, err := env.devices.Update(env.ctx, &dto.UpdateDeviceRequest{Id: other.Id, Imei: other.Imei, Status: "inactive"})
	require.NoError(t, err)
	assert.Equal(t, "inactive", updated.Status)

	inactive, err := env.devices.GetAll(env.ctx, &dto.ListDevicesRequest{Status: "inactive"})
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, other.Id, inactive[0].Id)
}

func TestInstallationCreate_HoldsDeviceUntilCancelled(t *testing.T) {
	env := newTestEnv(t)
	client := env.client(t, "Atlas")
	car := env.car(t, client.Id, "1234-A-6")
	installer := env.installer(t, "Youssef", "Casablanca")
	device := env.device(t, "352099001761481")

	inst, err := env.installations.Create(env.ctx, &dto.CreateInstallationRequest{
		ClientId:    client.Id,
		InstallerId: installer.Id,
		DeviceId:    device.Id,
		CarId:       &car.Id,
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", inst.Status)
	assert.Equal(t, "2024-03-15", inst.Date)
	assert.Equal(t, device.Imei, inst.DeviceImei)
	assert.Equal(t, "Youssef", inst.InstallerName)

	shown, err := env.devices.Show(env.ctx, device.Id)
	require.NoError(t, err)
	assert.True(t, shown.Installed)

	second := env.client(t, "Rif")
	_, err = env.installations.Create(env.ctx, &dto.CreateInstallationRequest{
		ClientId: second.Id, InstallerId: installer.Id, DeviceId: device.Id,
	})
	assert.True(t, apperror.IsConflict(err))

	_, err = env.installations.Update(env.ctx, &dto.UpdateInstallationRequest{
		Id: inst.Id, ClientId: client.Id, InstallerId: installer.Id, DeviceId: device.Id, CarId: &car.Id, Status: "cancelled",
	})
	require.NoError(t, err)

	moved, err := env.installations.Create(env.ctx, &dto.CreateInstallationRequest{
		ClientId: second.Id, InstallerId: installer.Id, DeviceId: device.Id, Date: "2024-03-20", Status: "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-20", moved.Date)

	byClient, err := env.installations.GetAll(env.ctx, &dto.ListInstallationsRequest{ClientId: client.Id.String()})
	require.NoError(t, err)
	require.Len(t, byClient, 1)
	assert.Equal(t, "cancelled", byClient[0].Status)

	withCount, err := env.installers.Show(env.ctx, installer.Id)
	require.NoError(t, err)
	assert.EqualValues(t, 2, withCount.Installations)
}

func TestInstallationCreate_RejectsBadReferences(t *testing.T) {
	env := newTestEnv(t)
	client := env.client(t, "Atlas")
	installer := env.installer(t, "Youssef", "Casablanca")
	device := env.device(t, "352099001761481")

	cases := map[string]*dto.CreateInstallationRequest{
		"unknown client":    {ClientId: uuid.New(), InstallerId: installer.Id, DeviceId: device.Id},
		"unknown installer": {ClientId: client.Id, InstallerId: uuid.New(), DeviceId: device.Id},
		"unknown device":    {ClientId: client.Id, InstallerId: installer.Id, DeviceId: uuid.New()},
		"bad date":          {ClientId: client.Id, InstallerId: installer.Id, DeviceId: device.Id, Date: "15/03/2024"},
		"foreign car":       {ClientId: client.Id, InstallerId: installer.Id, DeviceId: device.Id, CarId: lo.ToPtr(env.car(t, env.client(t, "Rif").Id, "9-B-1").Id)},
	}
	for name, req := range cases {
		_, err := env.installations.Create(env.ctx, req)
		assert.True(t, apperror.IsValidation(err), name)
	}

	_, err := env.devices.Update(env.ctx, &dto.UpdateDeviceRequest{Id: device.Id, Imei: device.Imei, Status: "inactive"})
	require.NoError(t, err)
	_, err = env.installations.Create(env.ctx, &dto.CreateInstallationRequest{
		ClientId: client.Id, InstallerId: installer.Id, DeviceId: device.Id,
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestInstallationReferences_BlockDeletes(t *testing.T) {
	env := newTestEnv(t)
	client := env.client(t, "Atlas")
	installer := env.installer(t, "Youssef", "Casablanca")
	device := env.device(t, "352099001761481")

	inst, err := env.installations.Create(env.ctx, &dto.CreateInstallationRequest{
		ClientId: client.Id, InstallerId: installer.Id, DeviceId: device.Id,
	})
	require.NoError(t, err)

	assert.True(t, apperror.IsConflict(env.devices.Delete(env.ctx, device.Id)))
	assert.True(t, apperror.IsConflict(env.installers.Delete(env.ctx, installer.Id)))
	assert.True(t, apperror.IsConflict(env.clients.Delete(env.ctx, client.Id)))

	require.NoError(t, env.installations.Delete(env.ctx, inst.Id))
	_, err = env.installations.Show(env.ctx, inst.Id)
	assert.True(t, apperror.IsNotFound(err))

	require.NoError(t, env.devices.Delete(env.ctx, device.Id))
	require.NoError(t, env.installers.Delete(env.ctx, installer.Id))
	require.NoError(t, env.clients.Delete(env.ctx, client.Id))
}

func TestIntervention_PricedFromType(t *testing.T) {
	env := newTestEnv(t)
	client := env.client(t, "Atlas")
	car := env.car(t, client.Id, "1234-A-6")
	installer := env.installer(t, "Youssef", "Casablanca")

	check, err := env.interventionTypes.Create(env.ctx, &dto.CreateInterventionTypeRequest{
		Name: "Vérification", DurationMinutes: 30, Price: dec("150"),
	})
	require.NoError(t, err)
	assert.Equal(t, "active", check.Status)

	iv, err := env.interventions.Create(env.ctx, &dto.CreateInterventionRequest{
		CarId: car.Id, TypeId: check.Id, InstallerId: installer.Id, Notes: "boîtier débranché",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", iv.Status)
	assert.Equal(t, "2024-03-15", iv.Date)
	assert.Equal(t, "Vérification", iv.TypeName)
	assert.True(t, dec("150").Equal(iv.Price))

	done, err := env.interventions.Update(env.ctx, &dto.UpdateInterventionRequest{
		Id: iv.Id, CarId: car.Id, TypeId: check.Id, InstallerId: installer.Id, Status: "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", done.Status)

	byCar, err := env.interventions.GetAll(env.ctx, &dto.ListInterventionsRequest{CarId: car.Id.String()})
	require.NoError(t, err)
	require.Len(t, byCar, 1)
	assert.Equal(t, iv.Id, byCar[0].Id)

	none, err := env.interventions.GetAll(env.ctx, &dto.ListInterventionsRequest{CarId: uuid.New().String()})
	require.NoError(t, err)
	assert.Empty(t, none)

	assert.True(t, apperror.IsConflict(env.interventionTypes.Delete(env.ctx, check.Id)))
	assert.True(t, apperror.IsConflict(env.cars.Delete(env.ctx, car.Id)))
	assert.True(t, apperror.IsConflict(env.installers.Delete(env.ctx, installer.Id)))

	require.NoError(t, env.interventions.Delete(env.ctx, iv.Id))
	require.NoError(t, env.interventionTypes.Delete(env.ctx, check.Id))
	require.NoError(t, env.cars.Delete(env.ctx, car.Id))
}

func TestInterventionType_Validation(t *testing.T) {
	env := newTestEnv(t)
	client := env.client(t, "Atlas")
	car := env.car(t, client.Id, "1234-A-6")
	installer := env.installer(t, "Youssef", "Casablanca")

	_, err := env.interventionTypes.Create(env.ctx, &dto.CreateInterventionTypeRequest{Name: "X", DurationMinutes: 30, Price: dec("-1")})
	assert.True(t, apperror.IsValidation(err))
	_, err = env.interventionTypes.Create(env.ctx, &dto.CreateInterventionTypeRequest{Name: "X", DurationMinutes: 0, Price: dec("10")})
	assert.True(t, apperror.IsValidation(err))

	retired, err := env.interventionTypes.Create(env.ctx, &dto.CreateInterventionTypeRequest{
		Name: "Ancien", DurationMinutes: 60, Price: dec("200"), Status: "inactive",
	})
	require.NoError(t, err)
	_, err = env.interventions.Create(env.ctx, &dto.CreateInterventionRequest{
		CarId: car.Id, TypeId: retired.Id, InstallerId: installer.Id,
	})
	assert.True(t, apperror.IsValidation(err))

	_, err = env.interventions.Create(env.ctx, &dto.CreateInterventionRequest{
		CarId: uuid.New(), TypeId: retired.Id, InstallerId: installer.Id,
	})
	assert.True(t, apperror.IsValidation(err))

	_, err = env.interventionTypes.Show(env.ctx, uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}
