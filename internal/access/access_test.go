package access

import "testing"

func TestDerive_FinancePaths(t *testing.T) {
	supers := []string{"boss@mddrc.com"}

	cases := []struct {
		name string
		user User
		want bool
	}{
		{"admin role", User{Role: "admin"}, true},
		{"finance role", User{Role: "finance"}, true},
		{"super admin email", User{Email: "Boss@MDDRC.com", Role: "trainer"}, true},
		{"explicit flag", User{Role: "coordinator", FinanceFlag: true}, true},
		{"plain trainer", User{Role: "trainer"}, false},
		{"empty user", User{}, false},
	}

	for _, tc := range cases {
		got := Derive(tc.user, supers)
		if got.Finance != tc.want {
			t.Fatalf("%s: expected finance=%v, got %v", tc.name, tc.want, got.Finance)
		}
	}
}

func TestDerive_SuperAdmin(t *testing.T) {
	supers := []string{"boss@mddrc.com"}

	got := Derive(User{Email: "boss@mddrc.com", Role: "trainer"}, supers)
	if !got.SuperAdmin || !got.Finance || !got.DataManagement {
		t.Fatalf("super admin must hold every capability, got %+v", got)
	}

	got = Derive(User{Email: "", Role: "trainer"}, []string{""})
	if got.SuperAdmin {
		t.Fatal("empty email must never match an empty super-admin entry")
	}
}

func TestDerive_DataManagement(t *testing.T) {
	if got := Derive(User{Role: "finance"}, nil); got.DataManagement {
		t.Fatal("finance role alone does not grant data management")
	}
	if got := Derive(User{Role: "admin"}, nil); !got.DataManagement {
		t.Fatal("admin role grants data management")
	}
}
