// Package orm provides a declarative schema builder and a lazy, immutable
// query builder — the shape of Django's model/queryset layer with the
// metaclass machinery replaced by explicit startup construction.
//
// No driver, no I/O: the package only assembles SQL and bound arguments;
// executing them belongs to whatever database layer the application wires
// into its providers.
//
//	// Django:
//	// class User(Model):
//	//     id       = IntegerField(primary_key=True)
//	//     username = CharField(max_length=50)
//	//     class Meta: db_table = "auth_user"
//	user := orm.NewModel("auth_user",
//	    orm.Integer("id", orm.PrimaryKey()),
//	    orm.Char("username", 50),
//	)
//
//	// Django: User.objects.filter(username="shaheer").filter(id=1)
//	qs := user.Objects().Filter("username", "shaheer").Filter("id", 1)
//
//	// Nothing runs until materialization:
//	sql, args := qs.SQL()
//
// Every Filter returns a new QuerySet; builders can be shared and branched
// without affecting each other.
package orm
